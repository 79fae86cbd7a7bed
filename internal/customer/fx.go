package customer

import (
	"github.com/servostack/garagedesk/internal/customer/repository"
	"github.com/servostack/garagedesk/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
