package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/servostack/garagedesk/internal/clock"
	"github.com/servostack/garagedesk/internal/config"
	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	customerrepo "github.com/servostack/garagedesk/internal/customer/repository"
	jobcarddomain "github.com/servostack/garagedesk/internal/jobcard/domain"
	jobcardrepo "github.com/servostack/garagedesk/internal/jobcard/repository"
)

type sentMail struct {
	to       []string
	subject  string
	template string
	data     any
}

type fakeEmail struct {
	sent []sentMail
}

func (f *fakeEmail) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject})
	return nil
}

func (f *fakeEmail) SendTemplate(ctx context.Context, to []string, subject, templateName string, data any) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, template: templateName, data: data})
	return nil
}

type fixture struct {
	sched *Scheduler
	db    *gorm.DB
	node  *snowflake.Node
	clk   *clock.FakeClock
	email *fakeEmail
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&customerdomain.Customer{},
		&customerdomain.Vehicle{},
		&jobcarddomain.JobCard{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	mailer := &fakeEmail{}

	sched, err := New(Params{
		DB:        db,
		Log:       zap.NewNop(),
		Clock:     clk,
		JobCards:  jobcardrepo.Provide(),
		Customers: customerrepo.Provide(),
		Email:     mailer,
		Profile: config.NewStaticGarageProfileHolder(config.GarageProfile{
			Name:  "GarageDesk Motors",
			Phone: "080-1234567",
		}),
	})
	require.NoError(t, err)

	return &fixture{sched: sched, db: db, node: node, clk: clk, email: mailer}
}

func (f *fixture) addClosedCard(t *testing.T, email string, closedAgo time.Duration) jobcarddomain.JobCard {
	t.Helper()

	customer := customerdomain.Customer{
		ID:    f.node.Generate(),
		Name:  "Ravi Kumar",
		Email: email,
	}
	require.NoError(t, f.db.Create(&customer).Error)

	vehicle := customerdomain.Vehicle{
		ID:           f.node.Generate(),
		CustomerID:   customer.ID,
		Registration: "KA01AB1234",
		Make:         "Maruti",
		Model:        "Swift",
	}
	require.NoError(t, f.db.Create(&vehicle).Error)

	closedAt := f.clk.Now().Add(-closedAgo)
	card := jobcarddomain.JobCard{
		ID:         f.node.Generate(),
		CustomerID: customer.ID,
		VehicleID:  vehicle.ID,
		Complaint:  "General service",
		Status:     jobcarddomain.StatusClosed,
		ClosedAt:   &closedAt,
	}
	require.NoError(t, f.db.Create(&card).Error)
	return card
}

func TestReminderSentForDueCard(t *testing.T) {
	f := newFixture(t)

	due := f.addClosedCard(t, "ravi@example.com", 180*24*time.Hour+time.Hour)

	require.NoError(t, f.sched.RunOnce(context.Background()))

	require.Len(t, f.email.sent, 1)
	mail := f.email.sent[0]
	assert.Equal(t, []string{"ravi@example.com"}, mail.to)
	assert.Equal(t, "service_reminder", mail.template)

	var stored jobcarddomain.JobCard
	require.NoError(t, f.db.First(&stored, "id = ?", due.ID).Error)
	assert.NotNil(t, stored.ReminderSentAt)
}

func TestReminderIsIdempotent(t *testing.T) {
	f := newFixture(t)

	f.addClosedCard(t, "ravi@example.com", 180*24*time.Hour+time.Hour)

	require.NoError(t, f.sched.RunOnce(context.Background()))
	require.NoError(t, f.sched.RunOnce(context.Background()))

	assert.Len(t, f.email.sent, 1)
}

func TestReminderWindowBoundaries(t *testing.T) {
	f := newFixture(t)

	// Too recent, inside the service interval.
	f.addClosedCard(t, "recent@example.com", 90*24*time.Hour)
	// Aged out past the window.
	f.addClosedCard(t, "old@example.com", 182*24*time.Hour)

	require.NoError(t, f.sched.RunOnce(context.Background()))

	assert.Empty(t, f.email.sent)
}

func TestReminderSkipsCustomerWithoutEmail(t *testing.T) {
	f := newFixture(t)

	card := f.addClosedCard(t, "", 180*24*time.Hour+time.Hour)

	require.NoError(t, f.sched.RunOnce(context.Background()))

	assert.Empty(t, f.email.sent)
	var stored jobcarddomain.JobCard
	require.NoError(t, f.db.First(&stored, "id = ?", card.ID).Error)
	assert.Nil(t, stored.ReminderSentAt)
}

func TestReminderSentNextDay(t *testing.T) {
	f := newFixture(t)

	// Closed 179.5 days ago, due tomorrow.
	f.addClosedCard(t, "soon@example.com", 179*24*time.Hour+12*time.Hour)

	require.NoError(t, f.sched.RunOnce(context.Background()))
	assert.Empty(t, f.email.sent)

	f.clk.Advance(24 * time.Hour)
	require.NoError(t, f.sched.RunOnce(context.Background()))
	assert.Len(t, f.email.sent, 1)
}
