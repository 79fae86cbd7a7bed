package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListJobCardFilter struct {
	Status     Status
	CustomerID snowflake.ID
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, card *JobCard) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*JobCard, error)
	List(ctx context.Context, db *gorm.DB, filter ListJobCardFilter) ([]JobCard, error)
	Update(ctx context.Context, db *gorm.DB, card *JobCard) error

	// ListReminderDue returns closed cards whose closed_at falls inside
	// [from, to) and which have not had a reminder sent yet.
	ListReminderDue(ctx context.Context, db *gorm.DB, from, to time.Time, limit int) ([]JobCard, error)
	MarkReminderSent(ctx context.Context, db *gorm.DB, id snowflake.ID, sentAt time.Time) error
}
