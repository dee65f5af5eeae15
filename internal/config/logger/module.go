package logger

import (
	"io"

	"go.uber.org/fx"

	"adviceslip/internal/config"
)

// Output is the destination supplied to the application logger, a nil Writer means stderr
type Output struct {
	io.Writer
}

// Params contains dependencies for the application logger
type Params struct {
	fx.In

	Config *config.Config
	Output Output `optional:"true"`
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(NewModuleLogger),
)

// NewModuleLogger creates the application logger from the supplied output
func NewModuleLogger(p Params) Logger {
	return NewLoggerWithOutput(p.Config, p.Output.Writer)
}
