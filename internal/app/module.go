package app

import (
	"go.uber.org/fx"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/app/bus"
	"adviceslip/internal/app/cli"
	"adviceslip/internal/app/fetcher"
	"adviceslip/internal/app/generator"
	"adviceslip/internal/app/ui/wire"
	"adviceslip/internal/config/logger"
)

// Module wires the whole application, fetcher hooks are registered before the app starts the UI
var Module = fx.Options(
	logger.Module,
	bus.Module,
	advice.Module,
	fetcher.Module,
	generator.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
