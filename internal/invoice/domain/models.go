// Package domain contains the invoice models. An invoice belongs to one
// of two classes, GST or non-GST, which differ in numbering prefix, tax
// treatment and bill layout.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Class string

const (
	ClassGST    Class = "gst"
	ClassNonGST Class = "non_gst"
)

func (c Class) Valid() bool {
	return c == ClassGST || c == ClassNonGST
}

// Prefix carries its own trailing dash. The number format appends
// another dash before the sequence, so minted numbers read "INV--6".
// That is the established format on printed bills and must not change.
func (c Class) Prefix() string {
	if c == ClassGST {
		return "INV-"
	}
	return "NIV-"
}

// DisplayName is used in bill titles and download filenames.
func (c Class) DisplayName() string {
	if c == ClassGST {
		return "GST"
	}
	return "NonGST"
}

type LineItem struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	InvoiceID   snowflake.ID `gorm:"not null;index" json:"invoice_id"`
	ItemID      snowflake.ID `gorm:"not null" json:"item_id"`
	Description string       `gorm:"type:text;not null" json:"description"`
	HSNCode     string       `gorm:"type:text" json:"hsn_code"`
	// Position preserves submission order for display.
	Position   int             `gorm:"not null" json:"position"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	Rate       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"rate"`
	GSTPercent int             `gorm:"not null" json:"gst_percent"`

	PreTaxAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"pre_tax_amount"`
	TaxAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"tax_amount"`
	LineTotal    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"line_total"`
}

func (LineItem) TableName() string { return "invoice_line_items" }

type Invoice struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id"`
	Number string       `gorm:"type:text;not null;index" json:"number"`
	Class  Class        `gorm:"type:text;not null;index" json:"class"`

	InvoiceDate time.Time     `gorm:"not null" json:"invoice_date"`
	CustomerID  snowflake.ID  `gorm:"not null;index" json:"customer_id"`
	VehicleID   snowflake.ID  `gorm:"not null" json:"vehicle_id"`
	JobCardID   *snowflake.ID `gorm:"index" json:"job_card_id,omitempty"`

	LineItems []LineItem `gorm:"foreignKey:InvoiceID" json:"line_items"`

	ServiceCharge decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"service_charge"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	TotalTax      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_tax"`
	// GrandTotal is stored for query convenience but is always
	// recomputable as subtotal + total tax + service charge.
	GrandTotal decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"grand_total"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }
