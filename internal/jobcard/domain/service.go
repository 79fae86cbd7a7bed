package domain

import (
	"context"
	"errors"
)

type CreateJobCardRequest struct {
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
	MechanicID string `json:"mechanic_id"`
	Complaint  string `json:"complaint"`
	Notes      string `json:"notes"`
}

type UpdateJobCardRequest struct {
	ID         string  `json:"-"`
	MechanicID *string `json:"mechanic_id,omitempty"`
	Complaint  *string `json:"complaint,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type ListJobCardRequest struct {
	Status     string
	CustomerID string
}

type Service interface {
	Create(context.Context, CreateJobCardRequest) (JobCard, error)
	List(context.Context, ListJobCardRequest) ([]JobCard, error)
	GetByID(ctx context.Context, id string) (JobCard, error)
	Update(context.Context, UpdateJobCardRequest) (JobCard, error)
	// Close marks the card closed; closing twice is an error.
	Close(ctx context.Context, id string) (JobCard, error)
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidComplaint = errors.New("invalid_complaint")
	ErrInvalidStatus    = errors.New("invalid_status")
	ErrNotFound         = errors.New("not_found")
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrVehicleNotFound  = errors.New("vehicle_not_found")
	ErrMechanicNotFound = errors.New("mechanic_not_found")
	ErrAlreadyClosed    = errors.New("already_closed")
)
