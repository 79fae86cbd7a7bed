package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/servostack/garagedesk/internal/config"
	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	"github.com/servostack/garagedesk/internal/invoice/calc"
	"github.com/servostack/garagedesk/internal/invoice/domain"
	"github.com/servostack/garagedesk/internal/invoice/number"
	itemdomain "github.com/servostack/garagedesk/internal/item/domain"
	jobcarddomain "github.com/servostack/garagedesk/internal/jobcard/domain"
	"github.com/servostack/garagedesk/internal/money"
	"github.com/servostack/garagedesk/internal/providers/pdf"
	"github.com/servostack/garagedesk/internal/tax"
	"github.com/servostack/garagedesk/pkg/db/pagination"
)

const invoiceDateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Customers customerdomain.Repository
	Items     itemdomain.Repository
	JobCards  jobcarddomain.Repository
	Renderer  pdf.Provider
	Profile   *config.GarageProfileHolder
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	customers customerdomain.Repository
	items     itemdomain.Repository
	jobcards  jobcarddomain.Repository
	renderer  pdf.Provider
	profile   *config.GarageProfileHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("invoice.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		customers: p.Customers,
		items:     p.Items,
		jobcards:  p.JobCards,
		renderer:  p.Renderer,
		profile:   p.Profile,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	class := domain.Class(strings.TrimSpace(req.Class))
	if !class.Valid() {
		return domain.Invoice{}, domain.ErrInvalidClass
	}

	customerID, err := parseID(req.CustomerID)
	if err != nil {
		return domain.Invoice{}, domain.ErrInvalidID
	}
	vehicleID, err := parseID(req.VehicleID)
	if err != nil {
		return domain.Invoice{}, domain.ErrInvalidID
	}

	customer, err := s.customers.FindByID(ctx, s.db, customerID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if customer == nil {
		return domain.Invoice{}, domain.ErrCustomerNotFound
	}

	vehicle, err := s.customers.FindVehicle(ctx, s.db, customerID, vehicleID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if vehicle == nil {
		return domain.Invoice{}, domain.ErrVehicleNotFound
	}

	var jobCardID *snowflake.ID
	if strings.TrimSpace(req.JobCardID) != "" {
		id, err := parseID(req.JobCardID)
		if err != nil {
			return domain.Invoice{}, domain.ErrInvalidID
		}
		card, err := s.jobcards.FindByID(ctx, s.db, id)
		if err != nil {
			return domain.Invoice{}, err
		}
		if card == nil {
			return domain.Invoice{}, domain.ErrJobCardNotFound
		}
		jobCardID = &id
	}

	invoiceDate := time.Now().UTC()
	if strings.TrimSpace(req.InvoiceDate) != "" {
		invoiceDate, err = time.Parse(invoiceDateLayout, strings.TrimSpace(req.InvoiceDate))
		if err != nil {
			return domain.Invoice{}, domain.ErrInvalidDate
		}
	}

	// Service charge is the one genuinely optional amount; quantity
	// and rate are never defaulted.
	serviceCharge, err := money.ParseOptionalAmount(req.ServiceCharge)
	if err != nil || serviceCharge.IsNegative() {
		return domain.Invoice{}, domain.ErrInvalidServiceCharge
	}

	invoiceID := s.genID.Generate()
	lineItems, lines, err := s.buildLineItems(ctx, invoiceID, class, req.Items)
	if err != nil {
		return domain.Invoice{}, err
	}

	totals := calc.Aggregate(lines, serviceCharge)

	nextNumber, err := s.mintNumber(ctx, class)
	if err != nil {
		return domain.Invoice{}, err
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		ID:            invoiceID,
		Number:        nextNumber,
		Class:         class,
		InvoiceDate:   invoiceDate,
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		JobCardID:     jobCardID,
		LineItems:     lineItems,
		ServiceCharge: serviceCharge,
		Subtotal:      totals.Subtotal,
		TotalTax:      totals.TotalTax,
		GrandTotal:    totals.GrandTotal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		s.log.Error("failed to create invoice",
			zap.String("number", invoice.Number),
			zap.Error(err),
		)
		return domain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("number", invoice.Number),
		zap.String("class", string(class)),
		zap.String("grand_total", money.Format(invoice.GrandTotal)),
	)

	return invoice, nil
}

// buildLineItems validates and computes every submitted row. The
// catalog supplies description, HSN code and, when not overridden,
// rate and GST bucket. Non-GST invoices tax every row at zero.
func (s *Service) buildLineItems(ctx context.Context, invoiceID snowflake.ID, class domain.Class, reqs []domain.CreateLineItemRequest) ([]domain.LineItem, []calc.Line, error) {
	if len(reqs) == 0 {
		return nil, nil, nil
	}

	ids := make([]snowflake.ID, 0, len(reqs))
	for _, req := range reqs {
		id, err := parseID(req.ItemID)
		if err != nil {
			return nil, nil, domain.ErrInvalidID
		}
		ids = append(ids, id)
	}

	catalog, err := s.items.FindByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[snowflake.ID]itemdomain.Item, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	lineItems := make([]domain.LineItem, 0, len(reqs))
	lines := make([]calc.Line, 0, len(reqs))

	for i, req := range reqs {
		item, ok := byID[ids[i]]
		if !ok {
			return nil, nil, domain.ErrItemNotFound
		}

		if req.Quantity <= 0 {
			return nil, nil, domain.ErrInvalidQuantity
		}

		rate := item.Rate
		if req.Rate != nil {
			rate, err = decimal.NewFromString(strings.TrimSpace(*req.Rate))
			if err != nil {
				return nil, nil, domain.ErrInvalidRate
			}
		}
		if rate.IsNegative() {
			return nil, nil, domain.ErrInvalidRate
		}

		percent := 0
		if class == domain.ClassGST {
			percent = item.GSTPercent
			if req.GSTPercent != nil {
				percent = *req.GSTPercent
			}
			if !tax.Valid(percent) {
				return nil, nil, domain.ErrInvalidTaxPercent
			}
		}

		line := calc.Compute(req.Quantity, rate, percent)
		lines = append(lines, line)

		lineItems = append(lineItems, domain.LineItem{
			ID:           s.genID.Generate(),
			InvoiceID:    invoiceID,
			ItemID:       item.ID,
			Description:  item.Name,
			HSNCode:      item.HSNCode,
			Position:     i,
			Quantity:     req.Quantity,
			Rate:         rate,
			GSTPercent:   percent,
			PreTaxAmount: line.PreTaxAmount,
			TaxAmount:    line.TaxAmount,
			LineTotal:    line.LineTotal,
		})
	}

	return lineItems, lines, nil
}

// mintNumber reads the current class count and formats the next
// identifier. Not safe under concurrent creation; see package number.
func (s *Service) mintNumber(ctx context.Context, class domain.Class) (string, error) {
	count, err := s.repo.CountByClass(ctx, s.db, class)
	if err != nil {
		return "", err
	}
	return number.Format(class, count), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	invoiceID, err := parseID(id)
	if err != nil {
		return domain.Invoice{}, domain.ErrInvalidID
	}

	invoice, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}
	return *invoice, nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoiceRequest) ([]*domain.Invoice, string, error) {
	filter := domain.ListInvoiceFilter{}

	if req.Class != "" {
		class := domain.Class(req.Class)
		if !class.Valid() {
			return nil, "", domain.ErrInvalidClass
		}
		filter.Class = class
	}
	if req.CustomerID != "" {
		id, err := parseID(req.CustomerID)
		if err != nil {
			return nil, "", domain.ErrInvalidID
		}
		filter.CustomerID = id
	}

	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 20
	}

	invoices, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		return nil, "", err
	}

	info := pagination.BuildCursorPageInfo(invoices, page.PageSize, func(inv *domain.Invoice) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        inv.ID.String(),
			CreatedAt: inv.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if info != nil && info.HasMore && len(invoices) > page.PageSize {
		invoices = invoices[:page.PageSize]
	}

	return invoices, info.NextPageToken, nil
}

// Update recomputes totals for an administrative correction. The
// invoice number and class are never touched here.
func (s *Service) Update(ctx context.Context, req domain.UpdateInvoiceRequest) (domain.Invoice, error) {
	invoiceID, err := parseID(req.ID)
	if err != nil {
		return domain.Invoice{}, domain.ErrInvalidID
	}

	invoice, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}

	if req.InvoiceDate != nil {
		parsed, err := time.Parse(invoiceDateLayout, strings.TrimSpace(*req.InvoiceDate))
		if err != nil {
			return domain.Invoice{}, domain.ErrInvalidDate
		}
		invoice.InvoiceDate = parsed
	}

	if req.ServiceCharge != nil {
		charge, err := money.ParseOptionalAmount(*req.ServiceCharge)
		if err != nil || charge.IsNegative() {
			return domain.Invoice{}, domain.ErrInvalidServiceCharge
		}
		invoice.ServiceCharge = charge
	}

	replaceItems := req.Items != nil
	lines := make([]calc.Line, 0, len(invoice.LineItems))

	if replaceItems {
		lineItems, computed, err := s.buildLineItems(ctx, invoice.ID, invoice.Class, req.Items)
		if err != nil {
			return domain.Invoice{}, err
		}
		invoice.LineItems = lineItems
		lines = computed
	} else {
		for _, item := range invoice.LineItems {
			lines = append(lines, calc.Compute(item.Quantity, item.Rate, item.GSTPercent))
		}
	}

	totals := calc.Aggregate(lines, invoice.ServiceCharge)
	invoice.Subtotal = totals.Subtotal
	invoice.TotalTax = totals.TotalTax
	invoice.GrandTotal = totals.GrandTotal
	invoice.UpdatedAt = time.Now().UTC()

	if replaceItems {
		err = s.repo.ReplaceLineItems(ctx, s.db, invoice, invoice.LineItems)
	} else {
		err = s.repo.Update(ctx, s.db, invoice)
	}
	if err != nil {
		s.log.Error("failed to update invoice",
			zap.String("invoice_id", invoice.ID.String()),
			zap.Error(err),
		)
		return domain.Invoice{}, err
	}

	return *invoice, nil
}

func (s *Service) NextNumber(ctx context.Context, class string) (string, error) {
	parsed := domain.Class(strings.TrimSpace(class))
	if !parsed.Valid() {
		return "", domain.ErrInvalidClass
	}
	return s.mintNumber(ctx, parsed)
}

func parseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}
