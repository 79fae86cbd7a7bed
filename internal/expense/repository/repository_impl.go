package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/servostack/garagedesk/internal/expense/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, expense *domain.Expense) error {
	return db.WithContext(ctx).Create(expense).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Expense, error) {
	var expense domain.Expense
	err := db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListExpenseRequest) ([]domain.Expense, error) {
	var expenses []domain.Expense
	stmt := db.WithContext(ctx).Model(&domain.Expense{})
	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if filter.From != nil {
		stmt = stmt.Where("incurred_on >= ?", *filter.From)
	}
	if filter.To != nil {
		stmt = stmt.Where("incurred_on <= ?", *filter.To)
	}
	err := stmt.Order("incurred_on desc, id desc").Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, expense *domain.Expense) error {
	return db.WithContext(ctx).
		Model(&domain.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]any{
			"title":      expense.Title,
			"category":   expense.Category,
			"amount":     expense.Amount,
			"notes":      expense.Notes,
			"updated_at": expense.UpdatedAt,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Expense{}, "id = ?", id).Error
}
