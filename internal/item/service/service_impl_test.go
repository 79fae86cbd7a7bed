package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/servostack/garagedesk/internal/item/domain"
	"github.com/servostack/garagedesk/internal/item/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Item{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateItemRequest{
		Name:       "Engine Oil 5W-30",
		Kind:       "part",
		HSNCode:    "2710",
		Rate:       "550",
		GSTPercent: 18,
	})
	require.NoError(t, err)
	assert.Equal(t, "engine-oil-5w-30", created.Slug)
	assert.Equal(t, "550.00", created.Rate.StringFixed(2))

	got, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 18, got.GSTPercent)
	assert.Equal(t, "2710", got.HSNCode)
}

func TestCreateItemValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateItemRequest{Name: "", Rate: "10"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateItemRequest{Name: "Oil", Rate: "-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	_, err = svc.Create(ctx, domain.CreateItemRequest{Name: "Oil", Rate: "10", GSTPercent: 15})
	assert.ErrorIs(t, err, domain.ErrInvalidGSTPercent)

	_, err = svc.Create(ctx, domain.CreateItemRequest{Name: "Oil", Rate: "10", Kind: "bundle"})
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestUpdateItemRateAndBucket(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateItemRequest{
		Name: "Wheel Alignment", Kind: "service", Rate: "400", GSTPercent: 18,
	})
	require.NoError(t, err)

	newRate := "450.505"
	newBucket := 12
	updated, err := svc.Update(ctx, domain.UpdateItemRequest{
		ID:         created.ID.String(),
		Rate:       &newRate,
		GSTPercent: &newBucket,
	})
	require.NoError(t, err)
	assert.Equal(t, "450.51", updated.Rate.StringFixed(2))
	assert.Equal(t, 12, updated.GSTPercent)

	bad := 7
	_, err = svc.Update(ctx, domain.UpdateItemRequest{ID: created.ID.String(), GSTPercent: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidGSTPercent)
}
