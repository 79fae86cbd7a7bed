// Package offers sends promotional mail blasts to every customer with
// an email on file. Send failures are logged per recipient and do not
// abort the broadcast.
package offers

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/servostack/garagedesk/internal/config"
	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	"github.com/servostack/garagedesk/internal/providers/email"
)

var (
	ErrInvalidSubject = errors.New("invalid_subject")
	ErrInvalidBody    = errors.New("invalid_body")
)

type BroadcastRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type BroadcastResult struct {
	Recipients int `json:"recipients"`
	Sent       int `json:"sent"`
}

type Service interface {
	Broadcast(context.Context, BroadcastRequest) (BroadcastResult, error)
}

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Customers customerdomain.Repository
	Email     email.Provider
	Profile   *config.GarageProfileHolder
}

type service struct {
	db        *gorm.DB
	log       *zap.Logger
	customers customerdomain.Repository
	email     email.Provider
	profile   *config.GarageProfileHolder
}

func New(p Params) Service {
	return &service{
		db:        p.DB,
		log:       p.Log.Named("offers.service"),
		customers: p.Customers,
		email:     p.Email,
		profile:   p.Profile,
	}
}

func (s *service) Broadcast(ctx context.Context, req BroadcastRequest) (BroadcastResult, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return BroadcastResult{}, ErrInvalidSubject
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return BroadcastResult{}, ErrInvalidBody
	}

	customers, err := s.customers.ListWithEmail(ctx, s.db)
	if err != nil {
		return BroadcastResult{}, err
	}

	profile := s.profile.Get()
	result := BroadcastResult{Recipients: len(customers)}

	for _, customer := range customers {
		err := s.email.SendTemplate(ctx, []string{customer.Email}, subject, "offer", map[string]any{
			"CustomerName": customer.Name,
			"Body":         body,
			"GarageName":   profile.Name,
			"GaragePhone":  profile.Phone,
		})
		if err != nil {
			s.log.Warn("offer email not sent",
				zap.String("customer_id", customer.ID.String()),
				zap.Error(err),
			)
			continue
		}
		result.Sent++
	}

	s.log.Info("offer broadcast finished",
		zap.Int("recipients", result.Recipients),
		zap.Int("sent", result.Sent),
	)

	return result, nil
}
