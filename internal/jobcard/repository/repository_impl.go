package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/servostack/garagedesk/internal/jobcard/domain"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, card *domain.JobCard) error {
	return db.WithContext(ctx).Create(card).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.JobCard, error) {
	var card domain.JobCard
	err := db.WithContext(ctx).
		First(&card, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, filter domain.ListJobCardFilter) ([]domain.JobCard, error) {
	query := db.WithContext(ctx).Model(&domain.JobCard{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}

	var cards []domain.JobCard
	if err := query.Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, card *domain.JobCard) error {
	return db.WithContext(ctx).Save(card).Error
}

func (r *repository) ListReminderDue(ctx context.Context, db *gorm.DB, from, to time.Time, limit int) ([]domain.JobCard, error) {
	var cards []domain.JobCard
	err := db.WithContext(ctx).
		Where("status = ?", domain.StatusClosed).
		Where("closed_at >= ? AND closed_at < ?", from, to).
		Where("reminder_sent_at IS NULL").
		Order("closed_at ASC").
		Limit(limit).
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *repository) MarkReminderSent(ctx context.Context, db *gorm.DB, id snowflake.ID, sentAt time.Time) error {
	return db.WithContext(ctx).
		Model(&domain.JobCard{}).
		Where("id = ?", id).
		Update("reminder_sent_at", sentAt).Error
}
