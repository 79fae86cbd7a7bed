package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/servostack/garagedesk/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListCustomerFilter struct {
	Name  string
	Phone string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, filter ListCustomerFilter, page pagination.Pagination) ([]*Customer, error)
	// ListWithEmail returns every customer with a non-empty email, for
	// mail broadcasts.
	ListWithEmail(ctx context.Context, db *gorm.DB) ([]Customer, error)
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error

	InsertVehicle(ctx context.Context, db *gorm.DB, vehicle *Vehicle) error
	ListVehicles(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]Vehicle, error)
	FindVehicle(ctx context.Context, db *gorm.DB, customerID, vehicleID snowflake.ID) (*Vehicle, error)
	DeleteVehicle(ctx context.Context, db *gorm.DB, customerID, vehicleID snowflake.ID) error
}
