package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// InWords converts a rupee amount to words using Indian numbering
// (crore/lakh), for the "amount in words" line on a bill. The amount is
// rounded half-up to the nearest rupee first.
func InWords(amount decimal.Decimal) string {
	rupees := amount.Round(0).IntPart()
	if rupees < 0 {
		return "Rupees Zero Only"
	}
	if rupees == 0 {
		return "Rupees Zero Only"
	}
	return "Rupees " + intToWords(rupees) + " Only"
}

func intToWords(n int64) string {
	var parts []string

	appendScale := func(value int64, label string) {
		if value > 0 {
			parts = append(parts, threeDigitWords(value))
			if label != "" {
				parts = append(parts, label)
			}
		}
	}

	appendScale(n/10000000, "Crore")
	n %= 10000000
	appendScale(n/100000, "Lakh")
	n %= 100000
	appendScale(n/1000, "Thousand")
	n %= 1000
	appendScale(n, "")

	if len(parts) == 0 {
		return "Zero"
	}
	return strings.Join(parts, " ")
}

func threeDigitWords(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tensWords[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}
