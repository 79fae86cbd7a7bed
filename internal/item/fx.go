package item

import (
	"github.com/servostack/garagedesk/internal/item/repository"
	"github.com/servostack/garagedesk/internal/item/service"
	"go.uber.org/fx"
)

var Module = fx.Module("item.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
