// Package number formats invoice identifiers. The sequence component
// is the count of persisted invoices of the class plus one, read at
// mint time. Two concurrent mints can read the same count and produce
// the same number; there is no unique index on the number column, so
// duplicates are possible under concurrent bill creation. Known gap,
// kept until a sequencing decision is made for the number column.
package number

import (
	"strconv"

	"github.com/servostack/garagedesk/internal/invoice/domain"
)

// Format joins the class prefix and the next sequence value. The
// prefix already ends with a dash, giving numbers like "INV--6".
func Format(class domain.Class, count int64) string {
	return class.Prefix() + "-" + strconv.FormatInt(count+1, 10)
}
