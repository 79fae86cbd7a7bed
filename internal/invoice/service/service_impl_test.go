package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/servostack/garagedesk/internal/config"
	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	customerrepo "github.com/servostack/garagedesk/internal/customer/repository"
	"github.com/servostack/garagedesk/internal/invoice/domain"
	"github.com/servostack/garagedesk/internal/invoice/repository"
	itemdomain "github.com/servostack/garagedesk/internal/item/domain"
	itemrepo "github.com/servostack/garagedesk/internal/item/repository"
	jobcarddomain "github.com/servostack/garagedesk/internal/jobcard/domain"
	jobcardrepo "github.com/servostack/garagedesk/internal/jobcard/repository"
	"github.com/servostack/garagedesk/internal/money"
	"github.com/servostack/garagedesk/internal/providers/pdf"
)

// fakeRenderer records the bill it was asked to lay out.
type fakeRenderer struct {
	lastBill pdf.Bill
	calls    int
}

func (f *fakeRenderer) RenderGSTBill(ctx context.Context, bill pdf.Bill) ([]byte, error) {
	f.lastBill = bill
	f.calls++
	return []byte("%PDF-1.7 gst"), nil
}

func (f *fakeRenderer) RenderNonGSTBill(ctx context.Context, bill pdf.Bill) ([]byte, error) {
	f.lastBill = bill
	f.calls++
	return []byte("%PDF-1.7 plain"), nil
}

type fixture struct {
	svc      domain.Service
	db       *gorm.DB
	node     *snowflake.Node
	renderer *fakeRenderer
	customer customerdomain.Customer
	vehicle  customerdomain.Vehicle
	labour   itemdomain.Item
	part     itemdomain.Item
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&customerdomain.Customer{},
		&customerdomain.Vehicle{},
		&itemdomain.Item{},
		&jobcarddomain.JobCard{},
		&domain.Invoice{},
		&domain.LineItem{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	customers := customerrepo.Provide()
	items := itemrepo.Provide()
	renderer := &fakeRenderer{}

	f := &fixture{
		db:       db,
		node:     node,
		renderer: renderer,
	}

	f.svc = New(Params{
		DB:        db,
		Log:       zap.NewNop(),
		GenID:     node,
		Repo:      repository.Provide(),
		Customers: customers,
		Items:     items,
		JobCards:  jobcardrepo.Provide(),
		Renderer:  renderer,
		Profile: config.NewStaticGarageProfileHolder(config.GarageProfile{
			Name:  "GarageDesk Motors",
			GSTIN: "29ABCDE1234F1Z5",
		}),
	})

	ctx := context.Background()
	f.customer = customerdomain.Customer{
		ID:      node.Generate(),
		Name:    "Ravi Kumar",
		Phone:   "9876543210",
		Address: "12 MG Road, Bengaluru",
	}
	require.NoError(t, customers.Insert(ctx, db, &f.customer))

	f.vehicle = customerdomain.Vehicle{
		ID:           node.Generate(),
		CustomerID:   f.customer.ID,
		Registration: "KA01AB1234",
		Make:         "Maruti",
		Model:        "Swift",
	}
	require.NoError(t, customers.InsertVehicle(ctx, db, &f.vehicle))

	f.labour = itemdomain.Item{
		ID:         node.Generate(),
		Name:       "General Service Labour",
		Slug:       "general-service-labour",
		Kind:       itemdomain.ItemKindService,
		Rate:       decimal.RequireFromString("500"),
		GSTPercent: 18,
	}
	require.NoError(t, items.Insert(ctx, db, &f.labour))

	f.part = itemdomain.Item{
		ID:         node.Generate(),
		Name:       "Engine Oil 1L",
		Slug:       "engine-oil-1l",
		Kind:       itemdomain.ItemKindPart,
		HSNCode:    "2710",
		Rate:       decimal.RequireFromString("150"),
		GSTPercent: 18,
	}
	require.NoError(t, items.Insert(ctx, db, &f.part))

	return f
}

func (f *fixture) createGST(t *testing.T) domain.Invoice {
	t.Helper()
	inv, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Class:      "gst",
		CustomerID: f.customer.ID.String(),
		VehicleID:  f.vehicle.ID.String(),
		Items: []domain.CreateLineItemRequest{
			{ItemID: f.labour.ID.String(), Quantity: 2},
			{ItemID: f.labour.ID.String(), Quantity: 2},
		},
		ServiceCharge: "200",
	})
	require.NoError(t, err)
	return inv
}

func TestCreateGSTInvoice(t *testing.T) {
	f := newFixture(t)

	inv := f.createGST(t)

	assert.Equal(t, "INV--1", inv.Number)
	assert.Equal(t, "2000.00", money.Format(inv.Subtotal))
	assert.Equal(t, "360.00", money.Format(inv.TotalTax))
	assert.Equal(t, "2560.00", money.Format(inv.GrandTotal))

	require.Len(t, inv.LineItems, 2)
	line := inv.LineItems[0]
	assert.Equal(t, "General Service Labour", line.Description)
	assert.Equal(t, "1000.00", money.Format(line.PreTaxAmount))
	assert.Equal(t, "180.00", money.Format(line.TaxAmount))
	assert.Equal(t, "1180.00", money.Format(line.LineTotal))
}

func TestCreateNonGSTInvoice(t *testing.T) {
	f := newFixture(t)

	inv, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Class:      "non_gst",
		CustomerID: f.customer.ID.String(),
		VehicleID:  f.vehicle.ID.String(),
		Items: []domain.CreateLineItemRequest{
			{ItemID: f.part.ID.String(), Quantity: 3},
		},
		ServiceCharge: "50",
	})
	require.NoError(t, err)

	// Catalog bucket is ignored on a plain bill.
	assert.Equal(t, "NIV--1", inv.Number)
	assert.Equal(t, 0, inv.LineItems[0].GSTPercent)
	assert.Equal(t, "450.00", money.Format(inv.Subtotal))
	assert.Equal(t, "0.00", money.Format(inv.TotalTax))
	assert.Equal(t, "500.00", money.Format(inv.GrandTotal))
}

func TestCreateInvoiceNoItems(t *testing.T) {
	f := newFixture(t)

	inv, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Class:         "gst",
		CustomerID:    f.customer.ID.String(),
		VehicleID:     f.vehicle.ID.String(),
		ServiceCharge: "75",
	})
	require.NoError(t, err)

	assert.Equal(t, "0.00", money.Format(inv.Subtotal))
	assert.Equal(t, "75.00", money.Format(inv.GrandTotal))
}

func TestCreateInvoiceValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := func() domain.CreateInvoiceRequest {
		return domain.CreateInvoiceRequest{
			Class:      "gst",
			CustomerID: f.customer.ID.String(),
			VehicleID:  f.vehicle.ID.String(),
			Items: []domain.CreateLineItemRequest{
				{ItemID: f.labour.ID.String(), Quantity: 1},
			},
		}
	}

	req := base()
	req.Class = "vat"
	_, err := f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidClass)

	req = base()
	req.Items[0].Quantity = 0
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	negative := "-10"
	req = base()
	req.Items[0].Rate = &negative
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	badPercent := 7
	req = base()
	req.Items[0].GSTPercent = &badPercent
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidTaxPercent)

	req = base()
	req.Items[0].ItemID = f.node.Generate().String()
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	req = base()
	req.CustomerID = f.node.Generate().String()
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	req = base()
	req.VehicleID = f.node.Generate().String()
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)

	req = base()
	req.ServiceCharge = "-5"
	_, err = f.svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidServiceCharge)
}

func TestNextNumberCountsPerClass(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		f.createGST(t)
	}

	next, err := f.svc.NextNumber(ctx, "gst")
	require.NoError(t, err)
	assert.Equal(t, "INV--6", next)

	next, err = f.svc.NextNumber(ctx, "non_gst")
	require.NoError(t, err)
	assert.Equal(t, "NIV--1", next)

	_, err = f.svc.NextNumber(ctx, "vat")
	assert.ErrorIs(t, err, domain.ErrInvalidClass)
}

func TestGetByIDRoundTrip(t *testing.T) {
	f := newFixture(t)

	created := f.createGST(t)

	got, err := f.svc.GetByID(context.Background(), created.ID.String())
	require.NoError(t, err)

	assert.Equal(t, created.Number, got.Number)
	require.Len(t, got.LineItems, 2)
	for i, line := range got.LineItems {
		assert.Equal(t, i, line.Position)
		assert.Equal(t, "General Service Labour", line.Description)
		assert.Equal(t, int64(2), line.Quantity)
		assert.Equal(t, "500.00", money.Format(line.Rate))
		assert.Equal(t, "1180.00", money.Format(line.LineTotal))
	}
	assert.True(t, got.GrandTotal.Equal(got.Subtotal.Add(got.TotalTax).Add(got.ServiceCharge)))

	_, err = f.svc.GetByID(context.Background(), f.node.Generate().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateInvoiceRecomputes(t *testing.T) {
	f := newFixture(t)

	created := f.createGST(t)

	charge := "500"
	updated, err := f.svc.Update(context.Background(), domain.UpdateInvoiceRequest{
		ID:            created.ID.String(),
		ServiceCharge: &charge,
	})
	require.NoError(t, err)

	assert.Equal(t, created.Number, updated.Number)
	assert.Equal(t, "2000.00", money.Format(updated.Subtotal))
	assert.Equal(t, "2860.00", money.Format(updated.GrandTotal))

	// Replacing the lines recomputes everything from scratch.
	updated, err = f.svc.Update(context.Background(), domain.UpdateInvoiceRequest{
		ID: created.ID.String(),
		Items: []domain.CreateLineItemRequest{
			{ItemID: f.part.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "150.00", money.Format(updated.Subtotal))
	assert.Equal(t, "27.00", money.Format(updated.TotalTax))
	assert.Equal(t, "677.00", money.Format(updated.GrandTotal))
}

func TestRenderPDF(t *testing.T) {
	f := newFixture(t)

	created := f.createGST(t)

	bill, err := f.svc.RenderPDF(context.Background(), created.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "GST-Bill-INV--1.pdf", bill.Filename)
	assert.NotEmpty(t, bill.Data)
	assert.Equal(t, 1, f.renderer.calls)
	assert.Equal(t, "Ravi Kumar", f.renderer.lastBill.CustomerName)
	assert.Equal(t, "KA01AB1234", f.renderer.lastBill.VehicleRegistration)
	assert.Equal(t, "Maruti Swift", f.renderer.lastBill.VehicleMakeModel)
	assert.Len(t, f.renderer.lastBill.Invoice.LineItems, 2)

	_, err = f.svc.RenderPDF(context.Background(), f.node.Generate().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
