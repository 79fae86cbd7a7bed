package domain

import (
	"context"
	"errors"
	"time"
)

type CreateExpenseRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	IncurredOn string `json:"incurred_on"`
	Notes      string `json:"notes"`
}

type UpdateExpenseRequest struct {
	ID       string  `json:"-"`
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Amount   *string `json:"amount,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type ListExpenseRequest struct {
	Category string
	From     *time.Time
	To       *time.Time
}

type Service interface {
	Create(context.Context, CreateExpenseRequest) (Expense, error)
	List(context.Context, ListExpenseRequest) ([]Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	Update(context.Context, UpdateExpenseRequest) (Expense, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidTitle  = errors.New("invalid_title")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidDate   = errors.New("invalid_date")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
