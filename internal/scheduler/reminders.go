package scheduler

import (
	"context"
	"strings"

	"go.uber.org/zap"

	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	jobcarddomain "github.com/servostack/garagedesk/internal/jobcard/domain"
)

// sendServiceReminders scans job cards that closed one reminder period
// ago and mails each customer once. ReminderSentAt keeps a card from
// being picked up twice; cards without a customer email are skipped
// unmarked and age out of the window on their own.
func (s *Scheduler) sendServiceReminders(ctx context.Context) error {
	now := s.clock.Now()
	from := now.Add(-(s.cfg.ReminderAfter + s.cfg.ReminderWindow))
	to := now.Add(-s.cfg.ReminderAfter)

	cards, err := s.jobcards.ListReminderDue(ctx, s.db, from, to, s.cfg.BatchSize)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		return nil
	}

	s.log.Info("reminder scan started", zap.Int("due", len(cards)))

	profile := s.profile.Get()
	sent := 0
	for _, card := range cards {
		if err := s.remindCustomer(ctx, card, profile.Name, profile.Phone); err != nil {
			s.log.Warn("reminder not sent",
				zap.String("job_card_id", card.ID.String()),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.log.Info("reminder scan finished", zap.Int("sent", sent))
	return nil
}

func (s *Scheduler) remindCustomer(ctx context.Context, card jobcarddomain.JobCard, garageName, garagePhone string) error {
	customer, err := s.customers.FindByID(ctx, s.db, card.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil || strings.TrimSpace(customer.Email) == "" {
		return nil
	}

	var vehicle *customerdomain.Vehicle
	for i := range customer.Vehicles {
		if customer.Vehicles[i].ID == card.VehicleID {
			vehicle = &customer.Vehicles[i]
			break
		}
	}
	if vehicle == nil {
		return nil
	}

	err = s.email.SendTemplate(ctx,
		[]string{customer.Email},
		"Time for your next service at "+garageName,
		"service_reminder",
		map[string]any{
			"CustomerName":     customer.Name,
			"VehicleMakeModel": strings.TrimSpace(vehicle.Make + " " + vehicle.Model),
			"Registration":     vehicle.Registration,
			"GarageName":       garageName,
			"GaragePhone":      garagePhone,
		},
	)
	if err != nil {
		return err
	}

	return s.jobcards.MarkReminderSent(ctx, s.db, card.ID, s.clock.Now())
}
