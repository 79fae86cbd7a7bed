package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Expense is a shop outgoing (rent, consumables, salaries) tracked for
// the owner's books; it never appears on a customer bill.
type Expense struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	Title      string          `gorm:"type:text;not null" json:"title"`
	Category   string          `gorm:"type:text" json:"category"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	IncurredOn time.Time       `gorm:"column:incurred_on;not null" json:"incurred_on"`
	Notes      string          `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Expense) TableName() string { return "expenses" }
