package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/servostack/garagedesk/internal/invoice/domain"
	"github.com/servostack/garagedesk/internal/providers/pdf"
)

// RenderPDF re-fetches the stored invoice and streams it through the
// class renderer. Reference checks run before any layout work so a
// missing customer or vehicle never produces a partial document.
func (s *Service) RenderPDF(ctx context.Context, id string) (domain.RenderedBill, error) {
	invoiceID, err := parseID(id)
	if err != nil {
		return domain.RenderedBill{}, domain.ErrInvalidID
	}

	invoice, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return domain.RenderedBill{}, err
	}
	if invoice == nil {
		return domain.RenderedBill{}, domain.ErrNotFound
	}

	customer, err := s.customers.FindByID(ctx, s.db, invoice.CustomerID)
	if err != nil {
		return domain.RenderedBill{}, err
	}
	if customer == nil {
		return domain.RenderedBill{}, domain.ErrCustomerNotFound
	}

	// The vehicle must still be among the customer's vehicles.
	vehicle, err := s.customers.FindVehicle(ctx, s.db, invoice.CustomerID, invoice.VehicleID)
	if err != nil {
		return domain.RenderedBill{}, err
	}
	if vehicle == nil {
		return domain.RenderedBill{}, domain.ErrVehicleNotFound
	}

	bill := pdf.Bill{
		Profile:             s.profile.Get(),
		Invoice:             *invoice,
		CustomerName:        customer.Name,
		CustomerPhone:       customer.Phone,
		CustomerAddress:     customer.Address,
		VehicleRegistration: vehicle.Registration,
		VehicleMakeModel:    strings.TrimSpace(vehicle.Make + " " + vehicle.Model),
	}

	var data []byte
	if invoice.Class == domain.ClassGST {
		data, err = s.renderer.RenderGSTBill(ctx, bill)
	} else {
		data, err = s.renderer.RenderNonGSTBill(ctx, bill)
	}
	if err != nil {
		s.log.Error("failed to render bill",
			zap.String("invoice_id", invoice.ID.String()),
			zap.String("number", invoice.Number),
			zap.Error(err),
		)
		return domain.RenderedBill{}, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	return domain.RenderedBill{
		Filename: fmt.Sprintf("%s-Bill-%s.pdf", invoice.Class.DisplayName(), invoice.Number),
		Data:     data,
	}, nil
}
