package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/servostack/garagedesk/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListItemFilter struct {
	Name string
	Kind ItemKind
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Item) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Item, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]Item, error)
	List(ctx context.Context, db *gorm.DB, filter ListItemFilter, page pagination.Pagination) ([]*Item, error)
	Update(ctx context.Context, db *gorm.DB, item *Item) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
