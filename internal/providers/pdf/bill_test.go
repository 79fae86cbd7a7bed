package pdf

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servostack/garagedesk/internal/config"
	invoicedomain "github.com/servostack/garagedesk/internal/invoice/domain"
)

func sampleBill(class invoicedomain.Class) Bill {
	jobCardID := snowflake.ID(9)
	return Bill{
		Profile: config.GarageProfile{
			Name:         "GarageDesk Motors",
			AddressLines: []string{"Workshop Road", "Pune 411001"},
			GSTIN:        "27ABCDE1234F1Z5",
			Phone:        "9876543210",
			Email:        "billing@garagedesk.test",
		},
		Invoice: invoicedomain.Invoice{
			ID:          snowflake.ID(1),
			Number:      class.Prefix() + "-6",
			Class:       class,
			InvoiceDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			CustomerID:  snowflake.ID(2),
			VehicleID:   snowflake.ID(3),
			JobCardID:   &jobCardID,
			LineItems: []invoicedomain.LineItem{
				{
					ID:           snowflake.ID(11),
					ItemID:       snowflake.ID(21),
					Description:  "General Service Labour",
					Position:     0,
					Quantity:     2,
					Rate:         decimal.RequireFromString("500"),
					GSTPercent:   18,
					PreTaxAmount: decimal.RequireFromString("1000"),
					TaxAmount:    decimal.RequireFromString("180"),
					LineTotal:    decimal.RequireFromString("1180"),
				},
				{
					ID:           snowflake.ID(12),
					ItemID:       snowflake.ID(22),
					Description:  "Engine Oil 5W30",
					HSNCode:      "2710",
					Position:     1,
					Quantity:     1,
					Rate:         decimal.RequireFromString("450.50"),
					GSTPercent:   28,
					PreTaxAmount: decimal.RequireFromString("450.50"),
					TaxAmount:    decimal.RequireFromString("126.14"),
					LineTotal:    decimal.RequireFromString("576.64"),
				},
			},
			ServiceCharge: decimal.RequireFromString("100"),
			Subtotal:      decimal.RequireFromString("1450.50"),
			TotalTax:      decimal.RequireFromString("306.14"),
			GrandTotal:    decimal.RequireFromString("1856.64"),
		},
		CustomerName:        "Asha Kulkarni",
		CustomerPhone:       "9000000001",
		CustomerAddress:     "14 MG Road",
		VehicleRegistration: "MH12AB1234",
		VehicleMakeModel:    "Maruti Swift",
	}
}

func TestRenderGSTBill(t *testing.T) {
	out, err := New().RenderGSTBill(context.Background(), sampleBill(invoicedomain.ClassGST))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestRenderNonGSTBill(t *testing.T) {
	out, err := New().RenderNonGSTBill(context.Background(), sampleBill(invoicedomain.ClassNonGST))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestRenderBillWithoutLines(t *testing.T) {
	bill := sampleBill(invoicedomain.ClassGST)
	bill.Invoice.LineItems = nil
	bill.Invoice.ServiceCharge = decimal.Zero
	bill.Invoice.Subtotal = decimal.Zero
	bill.Invoice.TotalTax = decimal.Zero
	bill.Invoice.GrandTotal = decimal.Zero

	out, err := New().RenderGSTBill(context.Background(), bill)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}
