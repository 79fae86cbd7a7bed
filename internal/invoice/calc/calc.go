// Package calc holds the bill arithmetic. Compute and Aggregate are
// pure; validation of quantity, rate and bucket happens at the service
// boundary before either is called.
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/servostack/garagedesk/internal/money"
	"github.com/servostack/garagedesk/internal/tax"
)

var oneHundred = decimal.NewFromInt(100)

// Line carries one computed bill row. The three amounts are each
// rounded to two decimals, and LineTotal always equals
// PreTaxAmount + TaxAmount exactly.
type Line struct {
	Quantity     int64
	Rate         decimal.Decimal
	TaxPercent   int
	PreTaxAmount decimal.Decimal
	TaxAmount    decimal.Decimal
	LineTotal    decimal.Decimal
}

// Compute derives the amounts for one row. The pre-tax amount is
// rounded before tax is applied, so the tax is a percentage of the
// rounded figure, not of the raw product. Changing that order changes
// printed bills by a paisa on some inputs.
func Compute(quantity int64, rate decimal.Decimal, taxPercent int) Line {
	preTax := money.Round2(rate.Mul(decimal.NewFromInt(quantity)))
	taxAmount := money.Round2(preTax.Mul(decimal.NewFromInt(int64(taxPercent))).Div(oneHundred))

	return Line{
		Quantity:     quantity,
		Rate:         rate,
		TaxPercent:   taxPercent,
		PreTaxAmount: preTax,
		TaxAmount:    taxAmount,
		LineTotal:    preTax.Add(taxAmount),
	}
}

// Totals is the aggregated view over a bill's lines.
type Totals struct {
	Subtotal      decimal.Decimal
	TaxBreakdown  tax.Breakdown
	TotalTax      decimal.Decimal
	ServiceCharge decimal.Decimal
	GrandTotal    decimal.Decimal
}

// Aggregate sums the computed lines and applies the flat service
// charge after tax. An empty line slice yields zero totals with the
// grand total equal to the service charge.
func Aggregate(lines []Line, serviceCharge decimal.Decimal) Totals {
	subtotal := decimal.Zero
	breakdown := tax.NewBreakdown()

	for _, line := range lines {
		subtotal = subtotal.Add(line.PreTaxAmount)
		breakdown.Add(tax.Bucket(line.TaxPercent), line.TaxAmount)
	}

	totalTax := breakdown.Total()

	return Totals{
		Subtotal:      subtotal,
		TaxBreakdown:  breakdown,
		TotalTax:      totalTax,
		ServiceCharge: serviceCharge,
		GrandTotal:    subtotal.Add(totalTax).Add(serviceCharge),
	}
}
