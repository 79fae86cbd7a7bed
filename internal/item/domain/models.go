// Package domain contains persistence models for the parts and
// services catalog.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// ItemKind distinguishes stocked parts from labour-style services.
type ItemKind string

const (
	ItemKindPart    ItemKind = "part"
	ItemKindService ItemKind = "service"
)

// Item is a catalog entry. HSNCode is display-only tax classification;
// GSTPercent must be one of the enumerated buckets. Rate is the default
// unit rate and may be overridden per invoice line.
type Item struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"type:text;not null" json:"name"`
	Slug       string          `gorm:"type:text;not null;index" json:"slug"`
	Kind       ItemKind        `gorm:"type:text;not null;default:'part'" json:"kind"`
	HSNCode    string          `gorm:"column:hsn_code;type:text" json:"hsn_code"`
	Rate       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"rate"`
	GSTPercent int             `gorm:"column:gst_percent;not null;default:0" json:"gst_percent"`
	CreatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Item) TableName() string { return "items" }
