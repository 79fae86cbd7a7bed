package domain

import (
	"context"
	"errors"

	"github.com/servostack/garagedesk/pkg/db/pagination"
)

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

type ListCustomerRequest struct {
	PageToken string
	PageSize  int
	Name      string
	Phone     string
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type AddVehicleRequest struct {
	CustomerID   string `json:"-"`
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	FuelType     string `json:"fuel_type"`
	OdometerKM   int64  `json:"odometer_km"`
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string) error

	AddVehicle(context.Context, AddVehicleRequest) (Vehicle, error)
	ListVehicles(ctx context.Context, customerID string) ([]Vehicle, error)
	RemoveVehicle(ctx context.Context, customerID, vehicleID string) error
}

var (
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidPhone        = errors.New("invalid_phone")
	ErrInvalidEmail        = errors.New("invalid_email")
	ErrInvalidID           = errors.New("invalid_id")
	ErrInvalidRegistration = errors.New("invalid_registration")
	ErrNotFound            = errors.New("not_found")
	ErrVehicleNotFound     = errors.New("vehicle_not_found")
)
