package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/servostack/garagedesk/internal/money"
	"github.com/servostack/garagedesk/internal/tax"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		quantity   int64
		rate       string
		taxPercent int
		preTax     string
		tax        string
		total      string
	}{
		{"eighteen percent", 2, "500", 18, "1000.00", "180.00", "1180.00"},
		{"zero tax", 3, "150", 0, "450.00", "0.00", "450.00"},
		{"five percent", 1, "99.99", 5, "99.99", "5.00", "104.99"},
		{"tax rounds half up", 1, "750.25", 18, "750.25", "135.05", "885.30"},
		{"fractional rate", 4, "12.375", 12, "49.50", "5.94", "55.44"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			line := Compute(tc.quantity, amount(tc.rate), tc.taxPercent)

			assert.Equal(t, tc.preTax, money.Format(line.PreTaxAmount))
			assert.Equal(t, tc.tax, money.Format(line.TaxAmount))
			assert.Equal(t, tc.total, money.Format(line.LineTotal))
			assert.True(t, line.LineTotal.Equal(line.PreTaxAmount.Add(line.TaxAmount)))
		})
	}
}

func TestAggregate(t *testing.T) {
	lines := []Line{
		Compute(2, amount("500"), 18),
		Compute(2, amount("500"), 18),
	}

	totals := Aggregate(lines, amount("200"))

	assert.Equal(t, "2000.00", money.Format(totals.Subtotal))
	assert.Equal(t, "360.00", money.Format(totals.TotalTax))
	assert.Equal(t, "2560.00", money.Format(totals.GrandTotal))
	assert.True(t, totals.TaxBreakdown[tax.BucketEighteen].Equal(amount("360")))
}

func TestAggregateNonGST(t *testing.T) {
	lines := []Line{Compute(3, amount("150"), 0)}

	totals := Aggregate(lines, amount("50"))

	assert.Equal(t, "450.00", money.Format(totals.Subtotal))
	assert.Equal(t, "0.00", money.Format(totals.TotalTax))
	assert.Equal(t, "500.00", money.Format(totals.GrandTotal))
}

func TestAggregateGroupsByBucket(t *testing.T) {
	lines := []Line{
		Compute(1, amount("1000"), 18),
		Compute(1, amount("1000"), 18),
		Compute(1, amount("500"), 5),
	}

	totals := Aggregate(lines, decimal.Zero)

	assert.True(t, totals.TaxBreakdown[tax.BucketEighteen].Equal(amount("360")))
	assert.True(t, totals.TaxBreakdown[tax.BucketFive].Equal(amount("25")))
	assert.Equal(t, "385.00", money.Format(totals.TotalTax))
	assert.True(t, totals.TotalTax.Equal(totals.TaxBreakdown.Total()))
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil, amount("75"))

	assert.Equal(t, "0.00", money.Format(totals.Subtotal))
	assert.Equal(t, "0.00", money.Format(totals.TotalTax))
	assert.Equal(t, "75.00", money.Format(totals.GrandTotal))

	totals = Aggregate(nil, decimal.Zero)
	assert.Equal(t, "0.00", money.Format(totals.GrandTotal))
}
