package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/servostack/garagedesk/internal/invoice/domain"
	jobcarddomain "github.com/servostack/garagedesk/internal/jobcard/domain"
)

type fakeInvoiceService struct {
	invoicedomain.Service

	renderBill invoicedomain.RenderedBill
	renderErr  error
	createErr  error
	nextNumber string
	nextErr    error
}

func (f *fakeInvoiceService) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.Invoice, error) {
	_ = ctx
	_ = req
	return invoicedomain.Invoice{}, f.createErr
}

func (f *fakeInvoiceService) NextNumber(ctx context.Context, class string) (string, error) {
	_ = ctx
	_ = class
	return f.nextNumber, f.nextErr
}

func (f *fakeInvoiceService) RenderPDF(ctx context.Context, id string) (invoicedomain.RenderedBill, error) {
	_ = ctx
	_ = id
	return f.renderBill, f.renderErr
}

type fakeJobCardService struct {
	jobcarddomain.Service

	closeErr error
}

func (f *fakeJobCardService) Close(ctx context.Context, id string) (jobcarddomain.JobCard, error) {
	_ = ctx
	_ = id
	return jobcarddomain.JobCard{}, f.closeErr
}

func newTestRouter(srv *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/api/invoices/next-number", srv.NextInvoiceNumber)
	router.GET("/api/invoices/:id/pdf", srv.DownloadInvoicePDF)
	router.POST("/api/jobcards/:id/close", srv.CloseJobCard)
	return router
}

func TestDownloadInvoicePDFSetsAttachmentHeaders(t *testing.T) {
	srv := &Server{invoiceSvc: &fakeInvoiceService{
		renderBill: invoicedomain.RenderedBill{
			Filename: "GST-Bill-INV--6.pdf",
			Data:     []byte("%PDF-1.7"),
		},
	}}
	router := newTestRouter(srv)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/42/pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected content type application/pdf, got %q", got)
	}
	if got := resp.Header().Get("Content-Disposition"); got != "attachment; filename=GST-Bill-INV--6.pdf" {
		t.Fatalf("unexpected content disposition %q", got)
	}
	if resp.Body.String() != "%PDF-1.7" {
		t.Fatalf("expected raw pdf bytes in body")
	}
}

func TestDownloadInvoicePDFNotFound(t *testing.T) {
	srv := &Server{invoiceSvc: &fakeInvoiceService{renderErr: invoicedomain.ErrNotFound}}
	router := newTestRouter(srv)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/42/pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestDownloadInvoicePDFRenderFailure(t *testing.T) {
	srv := &Server{invoiceSvc: &fakeInvoiceService{renderErr: invoicedomain.ErrRenderFailed}}
	router := newTestRouter(srv)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/42/pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Type != "render_error" {
		t.Fatalf("expected error type render_error, got %q", body.Error.Type)
	}
}

func TestNextInvoiceNumberInvalidClass(t *testing.T) {
	srv := &Server{invoiceSvc: &fakeInvoiceService{nextErr: invoicedomain.ErrInvalidClass}}
	router := newTestRouter(srv)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/next-number?class=bogus", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Type != "validation_error" {
		t.Fatalf("expected error type validation_error, got %q", body.Error.Type)
	}
}

func TestNextInvoiceNumberPreview(t *testing.T) {
	srv := &Server{invoiceSvc: &fakeInvoiceService{nextNumber: "INV--6"}}
	router := newTestRouter(srv)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/next-number?class=gst", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Data struct {
			Number string `json:"number"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.Number != "INV--6" {
		t.Fatalf("expected number INV--6, got %q", body.Data.Number)
	}
}

func TestCloseJobCardConflict(t *testing.T) {
	srv := &Server{jobCardSvc: &fakeJobCardService{closeErr: jobcarddomain.ErrAlreadyClosed}}
	router := newTestRouter(srv)

	req := httptest.NewRequest(http.MethodPost, "/api/jobcards/7/close", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}
