// Package domain contains persistence models for customers and their
// vehicles. A vehicle belongs to exactly one customer.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Customer struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"type:text;not null" json:"name"`
	Phone     string            `gorm:"type:text" json:"phone"`
	Email     string            `gorm:"type:text" json:"email"`
	Address   string            `gorm:"type:text" json:"address"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Vehicles []Vehicle `gorm:"foreignKey:CustomerID" json:"vehicles,omitempty"`
}

func (Customer) TableName() string { return "customers" }

type Vehicle struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID   snowflake.ID `gorm:"not null;index" json:"customer_id"`
	Registration string       `gorm:"type:text;not null" json:"registration"`
	Make         string       `gorm:"type:text" json:"make"`
	Model        string       `gorm:"type:text" json:"model"`
	FuelType     string       `gorm:"type:text" json:"fuel_type"`
	OdometerKM   int64        `gorm:"not null;default:0" json:"odometer_km"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Vehicle) TableName() string { return "vehicles" }
