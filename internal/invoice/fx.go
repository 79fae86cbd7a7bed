package invoice

import (
	"github.com/servostack/garagedesk/internal/invoice/repository"
	"github.com/servostack/garagedesk/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
