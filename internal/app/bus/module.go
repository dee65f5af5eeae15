package bus

import (
	"context"

	"go.uber.org/fx"

	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

// Module provides bus for dependency injection
var Module = fx.Module("bus",
	fx.Provide(func(cfg *config.Config, log logger.Logger) Bus {
		return New(cfg, log.WithComponent("BUS"))
	}),
	fx.Invoke(Register),
)

// Register closes the bus when the application stops
func Register(lifecycle fx.Lifecycle, b Bus) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			b.Close()
			return nil
		},
	})
}
