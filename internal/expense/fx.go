package expense

import (
	"github.com/servostack/garagedesk/internal/expense/repository"
	"github.com/servostack/garagedesk/internal/expense/service"
	"go.uber.org/fx"
)

var Module = fx.Module("expense.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
