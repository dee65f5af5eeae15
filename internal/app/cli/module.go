package cli

import (
	"go.uber.org/fx"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/app/generator"
	"adviceslip/internal/app/ui/wire"
	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

// Module provides the fx dependency injection options for the cli package
var Module = fx.Options(
	fx.Provide(newFromParams),
)

// Params contains dependencies for the cli
type Params struct {
	fx.In

	Config    *config.Config
	Options   *Options
	Source    advice.Source
	UI        wire.UI
	Generator generator.Generator
	Logger    logger.Logger
}

func newFromParams(p Params) CLI {
	return NewCLI(p.Config, p.Options, p.Source, p.UI, p.Generator, p.Logger.WithComponent("CLI"))
}
