package slips

import (
	"go.uber.org/fx"
)

// Module provides the slips UI and its dependencies
var Module = fx.Options(
	fx.Provide(
		NewController,
	),
)
