package offers

import "go.uber.org/fx"

var Module = fx.Module("offers.service",
	fx.Provide(New),
)
