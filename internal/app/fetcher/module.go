package fetcher

import (
	"context"

	"go.uber.org/fx"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/app/bus"
	"adviceslip/internal/config/logger"
)

// Module provides the fetcher and ties it to the application lifecycle
var Module = fx.Module("fetcher",
	fx.Provide(func(b bus.Bus, source advice.Source, log logger.Logger) Fetcher {
		return New(b, source, log.WithComponent("FETCHER"))
	}),
	fx.Invoke(Register),
)

// Register starts the fetcher with the application and stops it on shutdown
func Register(lifecycle fx.Lifecycle, f Fetcher) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			f.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			f.Stop()
			return nil
		},
	})
}
