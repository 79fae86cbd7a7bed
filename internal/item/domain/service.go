package domain

import (
	"context"
	"errors"

	"github.com/servostack/garagedesk/pkg/db/pagination"
)

type CreateItemRequest struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	HSNCode    string `json:"hsn_code"`
	Rate       string `json:"rate"`
	GSTPercent int    `json:"gst_percent"`
}

type UpdateItemRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	HSNCode    *string `json:"hsn_code,omitempty"`
	Rate       *string `json:"rate,omitempty"`
	GSTPercent *int    `json:"gst_percent,omitempty"`
}

type ListItemRequest struct {
	PageToken string
	PageSize  int
	Name      string
	Kind      string
}

type ListItemResponse struct {
	pagination.PageInfo
	Items []Item `json:"items"`
}

type Service interface {
	Create(context.Context, CreateItemRequest) (Item, error)
	List(context.Context, ListItemRequest) (ListItemResponse, error)
	GetByID(ctx context.Context, id string) (Item, error)
	Update(context.Context, UpdateItemRequest) (Item, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidKind       = errors.New("invalid_kind")
	ErrInvalidRate       = errors.New("invalid_rate")
	ErrInvalidGSTPercent = errors.New("invalid_gst_percent")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
)
