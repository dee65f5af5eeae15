package advice

import (
	"go.uber.org/fx"

	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

// Module provides the advice api client
var Module = fx.Module("advice",
	fx.Provide(func(cfg *config.Config, log logger.Logger) Source {
		return NewClient(cfg.API, log.WithComponent("API"))
	}),
)
