package user

import (
	"github.com/servostack/garagedesk/internal/user/repository"
	"github.com/servostack/garagedesk/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
