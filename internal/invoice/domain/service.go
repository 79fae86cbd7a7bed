package domain

import (
	"context"
	"errors"
)

type CreateLineItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
	// Rate overrides the catalog rate when present.
	Rate *string `json:"rate,omitempty"`
	// GSTPercent overrides the catalog bucket when present. Ignored
	// on non-GST invoices, where every line is taxed at zero.
	GSTPercent *int `json:"gst_percent,omitempty"`
}

type CreateInvoiceRequest struct {
	Class         string                  `json:"class"`
	CustomerID    string                  `json:"customer_id"`
	VehicleID     string                  `json:"vehicle_id"`
	JobCardID     string                  `json:"job_card_id"`
	InvoiceDate   string                  `json:"invoice_date"`
	Items         []CreateLineItemRequest `json:"items"`
	ServiceCharge string                  `json:"service_charge"`
}

type UpdateInvoiceRequest struct {
	ID            string                  `json:"-"`
	InvoiceDate   *string                 `json:"invoice_date,omitempty"`
	Items         []CreateLineItemRequest `json:"items,omitempty"`
	ServiceCharge *string                 `json:"service_charge,omitempty"`
}

type ListInvoiceRequest struct {
	Class      string
	CustomerID string
	PageToken  string
	PageSize   int
}

// RenderedBill is a fully laid out PDF ready to stream to the caller.
type RenderedBill struct {
	Filename string
	Data     []byte
}

type Service interface {
	Create(context.Context, CreateInvoiceRequest) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	List(context.Context, ListInvoiceRequest) ([]*Invoice, string, error)
	// Update recomputes totals from the submitted lines. It never
	// re-mints the invoice number.
	Update(context.Context, UpdateInvoiceRequest) (Invoice, error)
	// NextNumber counts persisted invoices of the class and formats
	// the next identifier. Concurrent callers can observe the same
	// count and receive the same number; see the numbering package.
	NextNumber(ctx context.Context, class string) (string, error)
	RenderPDF(ctx context.Context, id string) (RenderedBill, error)
}

var (
	ErrInvalidID            = errors.New("invalid_id")
	ErrInvalidClass         = errors.New("invalid_class")
	ErrInvalidDate          = errors.New("invalid_date")
	ErrInvalidQuantity      = errors.New("invalid_quantity")
	ErrInvalidRate          = errors.New("invalid_rate")
	ErrInvalidTaxPercent    = errors.New("invalid_tax_percent")
	ErrInvalidServiceCharge = errors.New("invalid_service_charge")

	ErrNotFound         = errors.New("not_found")
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrVehicleNotFound  = errors.New("vehicle_not_found")
	ErrItemNotFound     = errors.New("item_not_found")
	ErrJobCardNotFound  = errors.New("job_card_not_found")

	ErrRenderFailed = errors.New("render_failed")
)
