// Package pdf lays out printable bills with maroto. One renderer per
// invoice class; both produce the full byte buffer in memory and never
// touch disk or network themselves.
package pdf

import (
	"context"

	"github.com/servostack/garagedesk/internal/config"
	invoicedomain "github.com/servostack/garagedesk/internal/invoice/domain"
)

// Bill is everything a renderer needs, resolved up front. Callers must
// verify the customer and vehicle references before building one; the
// renderers assume the data is complete.
type Bill struct {
	Profile config.GarageProfile
	Invoice invoicedomain.Invoice

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string

	VehicleRegistration string
	VehicleMakeModel    string
}

type Provider interface {
	RenderGSTBill(ctx context.Context, bill Bill) ([]byte, error)
	RenderNonGSTBill(ctx context.Context, bill Bill) ([]byte, error)
}

type renderer struct{}

func New() Provider {
	return &renderer{}
}
