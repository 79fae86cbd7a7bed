// Package tax defines the GST rate buckets used across the catalog and
// billing. The buckets are ENGINE-CONSTANTS: invoices persist the
// percentage per line, so do not rename or repurpose once used.
package tax

import (
	"github.com/shopspring/decimal"
)

// Bucket is one of the enumerated GST percentages.
type Bucket int

const (
	BucketZero        Bucket = 0
	BucketFive        Bucket = 5
	BucketTwelve      Bucket = 12
	BucketEighteen    Bucket = 18
	BucketTwentyEight Bucket = 28
)

// Buckets returns the valid GST buckets in ascending order.
func Buckets() []Bucket {
	return []Bucket{BucketZero, BucketFive, BucketTwelve, BucketEighteen, BucketTwentyEight}
}

// Valid reports whether p is an allowed GST percentage.
func Valid(p int) bool {
	switch Bucket(p) {
	case BucketZero, BucketFive, BucketTwelve, BucketEighteen, BucketTwentyEight:
		return true
	default:
		return false
	}
}

// Breakdown accumulates tax amounts per bucket. It is a view over line
// items, built by grouping; it is never stored independently.
type Breakdown map[Bucket]decimal.Decimal

func NewBreakdown() Breakdown {
	return make(Breakdown)
}

// Add accumulates a tax amount into the bucket's running total.
func (b Breakdown) Add(bucket Bucket, amount decimal.Decimal) {
	b[bucket] = b[bucket].Add(amount)
}

// Total sums all bucket amounts.
func (b Breakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range b {
		total = total.Add(amount)
	}
	return total
}

// Ordered returns the non-zero buckets in ascending bucket order, for
// deterministic rendering of the tax section.
func (b Breakdown) Ordered() []BucketAmount {
	out := make([]BucketAmount, 0, len(b))
	for _, bucket := range Buckets() {
		amount, ok := b[bucket]
		if !ok {
			continue
		}
		out = append(out, BucketAmount{Bucket: bucket, Amount: amount})
	}
	return out
}

type BucketAmount struct {
	Bucket Bucket
	Amount decimal.Decimal
}
