// Package domain contains persistence models for job cards. A job card
// is the service ticket a vehicle visit opens; closing it makes the job
// billable and starts the service-reminder clock.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type JobCard struct {
	ID         snowflake.ID  `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID  `gorm:"not null;index" json:"customer_id"`
	VehicleID  snowflake.ID  `gorm:"not null;index" json:"vehicle_id"`
	MechanicID *snowflake.ID `gorm:"index" json:"mechanic_id,omitempty"`
	Complaint  string        `gorm:"type:text;not null" json:"complaint"`
	Notes      string        `gorm:"type:text" json:"notes"`
	Status     Status        `gorm:"type:text;not null;default:'open';index" json:"status"`
	ClosedAt   *time.Time    `gorm:"index" json:"closed_at,omitempty"`
	// ReminderSentAt keeps the daily reminder job idempotent.
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
	CreatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobCard) TableName() string { return "job_cards" }
