package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	"github.com/servostack/garagedesk/internal/jobcard/domain"
	userdomain "github.com/servostack/garagedesk/internal/user/domain"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Customers customerdomain.Repository
	Users     userdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	customers customerdomain.Repository
	users     userdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("jobcard.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		customers: p.Customers,
		users:     p.Users,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateJobCardRequest) (domain.JobCard, error) {
	complaint := strings.TrimSpace(req.Complaint)
	if complaint == "" {
		return domain.JobCard{}, domain.ErrInvalidComplaint
	}

	customerID, err := parseID(req.CustomerID)
	if err != nil {
		return domain.JobCard{}, domain.ErrInvalidID
	}
	vehicleID, err := parseID(req.VehicleID)
	if err != nil {
		return domain.JobCard{}, domain.ErrInvalidID
	}

	owner, err := s.customers.FindByID(ctx, s.db, customerID)
	if err != nil {
		return domain.JobCard{}, err
	}
	if owner == nil {
		return domain.JobCard{}, domain.ErrCustomerNotFound
	}

	// The vehicle must belong to the customer opening the card.
	vehicle, err := s.customers.FindVehicle(ctx, s.db, customerID, vehicleID)
	if err != nil {
		return domain.JobCard{}, err
	}
	if vehicle == nil {
		return domain.JobCard{}, domain.ErrVehicleNotFound
	}

	var mechanicID *snowflake.ID
	if strings.TrimSpace(req.MechanicID) != "" {
		id, err := parseID(req.MechanicID)
		if err != nil {
			return domain.JobCard{}, domain.ErrInvalidID
		}
		mechanic, err := s.users.FindByID(ctx, s.db, id)
		if err != nil {
			return domain.JobCard{}, err
		}
		if mechanic == nil {
			return domain.JobCard{}, domain.ErrMechanicNotFound
		}
		mechanicID = &id
	}

	now := time.Now().UTC()
	card := domain.JobCard{
		ID:         s.genID.Generate(),
		CustomerID: customerID,
		VehicleID:  vehicleID,
		MechanicID: mechanicID,
		Complaint:  complaint,
		Notes:      strings.TrimSpace(req.Notes),
		Status:     domain.StatusOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &card); err != nil {
		s.log.Error("failed to create job card", zap.Error(err))
		return domain.JobCard{}, err
	}

	return card, nil
}

func (s *Service) List(ctx context.Context, req domain.ListJobCardRequest) ([]domain.JobCard, error) {
	filter := domain.ListJobCardFilter{}

	if req.Status != "" {
		status := domain.Status(req.Status)
		if status != domain.StatusOpen && status != domain.StatusClosed {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = status
	}

	if req.CustomerID != "" {
		id, err := parseID(req.CustomerID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		filter.CustomerID = id
	}

	return s.repo.List(ctx, s.db, filter)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.JobCard, error) {
	cardID, err := parseID(id)
	if err != nil {
		return domain.JobCard{}, domain.ErrInvalidID
	}

	card, err := s.repo.FindByID(ctx, s.db, cardID)
	if err != nil {
		return domain.JobCard{}, err
	}
	if card == nil {
		return domain.JobCard{}, domain.ErrNotFound
	}
	return *card, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateJobCardRequest) (domain.JobCard, error) {
	cardID, err := parseID(req.ID)
	if err != nil {
		return domain.JobCard{}, domain.ErrInvalidID
	}

	card, err := s.repo.FindByID(ctx, s.db, cardID)
	if err != nil {
		return domain.JobCard{}, err
	}
	if card == nil {
		return domain.JobCard{}, domain.ErrNotFound
	}

	if req.Complaint != nil {
		complaint := strings.TrimSpace(*req.Complaint)
		if complaint == "" {
			return domain.JobCard{}, domain.ErrInvalidComplaint
		}
		card.Complaint = complaint
	}

	if req.Notes != nil {
		card.Notes = strings.TrimSpace(*req.Notes)
	}

	if req.MechanicID != nil {
		if strings.TrimSpace(*req.MechanicID) == "" {
			card.MechanicID = nil
		} else {
			id, err := parseID(*req.MechanicID)
			if err != nil {
				return domain.JobCard{}, domain.ErrInvalidID
			}
			mechanic, err := s.users.FindByID(ctx, s.db, id)
			if err != nil {
				return domain.JobCard{}, err
			}
			if mechanic == nil {
				return domain.JobCard{}, domain.ErrMechanicNotFound
			}
			card.MechanicID = &id
		}
	}

	card.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, card); err != nil {
		s.log.Error("failed to update job card",
			zap.String("job_card_id", cardID.String()),
			zap.Error(err),
		)
		return domain.JobCard{}, err
	}

	return *card, nil
}

func (s *Service) Close(ctx context.Context, id string) (domain.JobCard, error) {
	cardID, err := parseID(id)
	if err != nil {
		return domain.JobCard{}, domain.ErrInvalidID
	}

	card, err := s.repo.FindByID(ctx, s.db, cardID)
	if err != nil {
		return domain.JobCard{}, err
	}
	if card == nil {
		return domain.JobCard{}, domain.ErrNotFound
	}

	if card.Status == domain.StatusClosed {
		return domain.JobCard{}, domain.ErrAlreadyClosed
	}

	now := time.Now().UTC()
	card.Status = domain.StatusClosed
	card.ClosedAt = &now
	card.UpdatedAt = now

	if err := s.repo.Update(ctx, s.db, card); err != nil {
		s.log.Error("failed to close job card",
			zap.String("job_card_id", cardID.String()),
			zap.Error(err),
		)
		return domain.JobCard{}, err
	}

	return *card, nil
}

func parseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}
