package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"adviceslip/internal/app/bus"
	"adviceslip/internal/app/ui/slips"
	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

// UI creates a Bubble Tea program for the TUI
type UI func(ctx context.Context) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	slips.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config     *config.Config
	Bus        bus.Bus
	Controller slips.Controller
	Logger     logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model := slips.NewModel(
			ctx,
			params.Config,
			params.Bus,
			params.Controller,
			params.Logger,
		)

		opts := []tea.ProgramOption{tea.WithContext(ctx)}
		if params.Config.UI.AltScreen {
			opts = append(opts, tea.WithAltScreen())
		}

		p := tea.NewProgram(model, opts...)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
