package service

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

	"github.com/servostack/garagedesk/internal/expense/domain"
	"github.com/servostack/garagedesk/internal/expense/repository"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Expense{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateExpense(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateExpenseRequest{
		Title:      "Compressor maintenance",
		Category:   "workshop",
		Amount:     "1250.505",
		IncurredOn: "2024-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "1250.51", created.Amount.StringFixed(2))
	assert.Equal(t, time.March, created.IncurredOn.Month())

	got, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Compressor maintenance", got.Title)
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateExpenseRequest{Title: " ", Amount: "10"})
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)

	_, err = svc.Create(ctx, domain.CreateExpenseRequest{Title: "Rent", Amount: "-5"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Create(ctx, domain.CreateExpenseRequest{Title: "Rent", Amount: "100", IncurredOn: "15-03-2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestListExpensesByDateRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, day := range []string{"2024-01-10", "2024-02-10", "2024-03-10"} {
		_, err := svc.Create(ctx, domain.CreateExpenseRequest{
			Title:      "Utilities " + day,
			Category:   "utilities",
			Amount:     "300",
			IncurredOn: day,
		})
		require.NoError(t, err)
	}

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 28, 23, 59, 59, 0, time.UTC)

	listed, err := svc.List(ctx, domain.ListExpenseRequest{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Utilities 2024-02-10", listed[0].Title)
}

func TestDeleteExpense(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateExpenseRequest{Title: "One-off", Amount: "42"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	_, err = svc.GetByID(ctx, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
