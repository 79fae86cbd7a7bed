package offers

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/servostack/garagedesk/internal/config"
	customerdomain "github.com/servostack/garagedesk/internal/customer/domain"
	customerrepo "github.com/servostack/garagedesk/internal/customer/repository"
)

type fakeEmail struct {
	to []string
}

func (f *fakeEmail) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	f.to = append(f.to, to...)
	return nil
}

func (f *fakeEmail) SendTemplate(ctx context.Context, to []string, subject, templateName string, data any) error {
	f.to = append(f.to, to...)
	return nil
}

func TestBroadcast(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&customerdomain.Customer{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	mailer := &fakeEmail{}
	svc := New(Params{
		DB:        db,
		Log:       zap.NewNop(),
		Customers: customerrepo.Provide(),
		Email:     mailer,
		Profile:   config.NewStaticGarageProfileHolder(config.DefaultGarageProfile()),
	})

	require.NoError(t, db.Create(&customerdomain.Customer{ID: node.Generate(), Name: "Ravi", Email: "ravi@example.com"}).Error)
	require.NoError(t, db.Create(&customerdomain.Customer{ID: node.Generate(), Name: "Suresh", Email: "suresh@example.com"}).Error)
	require.NoError(t, db.Create(&customerdomain.Customer{ID: node.Generate(), Name: "No Email"}).Error)

	result, err := svc.Broadcast(context.Background(), BroadcastRequest{
		Subject: "Monsoon checkup offer",
		Body:    "Flat 20% off on brake service this week.",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Recipients)
	assert.Equal(t, 2, result.Sent)
	assert.ElementsMatch(t, []string{"ravi@example.com", "suresh@example.com"}, mailer.to)

	_, err = svc.Broadcast(context.Background(), BroadcastRequest{Body: "x"})
	assert.ErrorIs(t, err, ErrInvalidSubject)
}
