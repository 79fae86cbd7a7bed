// Package scheduler runs the daily background scan over closed job
// cards and mails service reminders. Job failures are logged and not
// retried; an unsent card stays eligible until it ages out of the
// reminder window.
package scheduler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/servostack/garagedesk/internal/clock"
	"github.com/servostack/garagedesk/internal/config"
	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	jobcarddomain "github.com/servostack/garagedesk/internal/jobcard/domain"
	"github.com/servostack/garagedesk/internal/lock"
	"github.com/servostack/garagedesk/internal/providers/email"
)

var ErrInvalidConfig = errors.New("scheduler: missing dependency")

const reminderLockKey = "scheduler:service-reminders"

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Clock     clock.Clock
	JobCards  jobcarddomain.Repository
	Customers customerdomain.Repository
	Email     email.Provider
	Profile   *config.GarageProfileHolder
	Locker    *lock.Locker `optional:"true"`
	Config    Config       `optional:"true"`
}

type Scheduler struct {
	db        *gorm.DB
	log       *zap.Logger
	cfg       Config
	clock     clock.Clock
	jobcards  jobcarddomain.Repository
	customers customerdomain.Repository
	email     email.Provider
	profile   *config.GarageProfileHolder
	locker    *lock.Locker
}

func New(p Params) (*Scheduler, error) {
	if p.DB == nil || p.Log == nil || p.Clock == nil || p.JobCards == nil || p.Customers == nil || p.Email == nil || p.Profile == nil {
		return nil, ErrInvalidConfig
	}
	return &Scheduler{
		db:        p.DB,
		log:       p.Log.Named("scheduler"),
		cfg:       p.Config.withDefaults(),
		clock:     p.Clock,
		jobcards:  p.JobCards,
		customers: p.Customers,
		email:     p.Email,
		profile:   p.Profile,
		locker:    p.Locker,
	}, nil
}

// RunOnce executes one reminder scan under the distributed lock. A
// held lock means another instance is already scanning; that is a
// clean no-op, not an error.
func (s *Scheduler) RunOnce(parent context.Context) error {
	ctx, cancel := context.WithTimeout(parent, s.cfg.JobTimeout)
	defer cancel()

	token, acquired, err := s.locker.TryLock(ctx, reminderLockKey, s.cfg.LockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		s.log.Debug("reminder scan already running elsewhere")
		return nil
	}
	defer func() {
		if err := s.locker.Release(ctx, reminderLockKey, token); err != nil {
			s.log.Warn("failed to release reminder lock", zap.Error(err))
		}
	}()

	return s.sendServiceReminders(ctx)
}

func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.RunInterval)
	defer ticker.Stop()

	for {
		if err := s.RunOnce(ctx); err != nil {
			s.log.Warn("reminder scan failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
