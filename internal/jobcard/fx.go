package jobcard

import (
	"github.com/servostack/garagedesk/internal/jobcard/repository"
	"github.com/servostack/garagedesk/internal/jobcard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("jobcard.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
