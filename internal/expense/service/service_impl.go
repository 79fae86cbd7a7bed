package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/servostack/garagedesk/internal/expense/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("expense.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateExpenseRequest) (domain.Expense, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Expense{}, domain.ErrInvalidTitle
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.IsNegative() {
		return domain.Expense{}, domain.ErrInvalidAmount
	}

	incurredOn := time.Now().UTC()
	if raw := strings.TrimSpace(req.IncurredOn); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return domain.Expense{}, domain.ErrInvalidDate
		}
		incurredOn = parsed.UTC()
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ID:         s.genID.Generate(),
		Title:      title,
		Category:   strings.TrimSpace(req.Category),
		Amount:     amount.Round(2),
		IncurredOn: incurredOn,
		Notes:      strings.TrimSpace(req.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &expense); err != nil {
		return domain.Expense{}, err
	}

	return expense, nil
}

func (s *Service) List(ctx context.Context, req domain.ListExpenseRequest) ([]domain.Expense, error) {
	req.Category = strings.TrimSpace(req.Category)
	return s.repo.List(ctx, s.db, req)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Expense, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Expense{}, err
	}

	expense, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Expense{}, err
	}
	if expense == nil {
		return domain.Expense{}, domain.ErrNotFound
	}

	return *expense, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateExpenseRequest) (domain.Expense, error) {
	parsed, err := s.parseID(req.ID)
	if err != nil {
		return domain.Expense{}, err
	}

	expense, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Expense{}, err
	}
	if expense == nil {
		return domain.Expense{}, domain.ErrNotFound
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.Expense{}, domain.ErrInvalidTitle
		}
		expense.Title = title
	}
	if req.Category != nil {
		expense.Category = strings.TrimSpace(*req.Category)
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(strings.TrimSpace(*req.Amount))
		if err != nil || amount.IsNegative() {
			return domain.Expense{}, domain.ErrInvalidAmount
		}
		expense.Amount = amount.Round(2)
	}
	if req.Notes != nil {
		expense.Notes = strings.TrimSpace(*req.Notes)
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, expense); err != nil {
		return domain.Expense{}, err
	}

	return *expense, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}

	expense, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, parsed)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
