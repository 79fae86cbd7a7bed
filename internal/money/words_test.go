package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInWords(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "Rupees Zero Only"},
		{"1", "Rupees One Only"},
		{"19", "Rupees Nineteen Only"},
		{"40", "Rupees Forty Only"},
		{"105", "Rupees One Hundred Five Only"},
		{"450", "Rupees Four Hundred Fifty Only"},
		{"2560", "Rupees Two Thousand Five Hundred Sixty Only"},
		{"100000", "Rupees One Lakh Only"},
		{"2345678", "Rupees Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{"10000000", "Rupees One Crore Only"},
	}

	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.amount)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, InWords(d), "amount %s", tc.amount)
	}
}

func TestInWordsRoundsToNearestRupee(t *testing.T) {
	assert.Equal(t, "Rupees Five Hundred One Only", InWords(decimal.RequireFromString("500.50")))
	assert.Equal(t, "Rupees Five Hundred Only", InWords(decimal.RequireFromString("500.49")))
}

func TestParseOptionalAmount(t *testing.T) {
	got, err := ParseOptionalAmount("")
	assert.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = ParseOptionalAmount("200")
	assert.NoError(t, err)
	assert.Equal(t, "200.00", Format(got))

	_, err = ParseOptionalAmount("not-a-number")
	assert.Error(t, err)
}
