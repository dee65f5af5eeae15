package navigation

import (
	"context"

	"github.com/looplab/fsm"

	"adviceslip/internal/config/logger"
)

// Mode is the display mode of the navigation state machine
type Mode string

// FSM states
const (
	ModeRandom Mode = "random"
	ModeSearch Mode = "search"
)

// FSM events
const (
	RandomLoaded = "random_loaded"
	SearchLoaded = "search_loaded"
	Reset        = "reset"
)

// FSM callbacks
const (
	OnRandom = "enter_random"
	OnSearch = "enter_search"
)

// newModeFSM creates the random/search state machine, RANDOM is the initial state
func newModeFSM(log logger.Logger) *fsm.FSM {
	all := []string{string(ModeRandom), string(ModeSearch)}

	return fsm.NewFSM(
		string(ModeRandom),
		fsm.Events{
			{Name: RandomLoaded, Src: all, Dst: string(ModeRandom)},
			{Name: SearchLoaded, Src: all, Dst: string(ModeSearch)},
			{Name: Reset, Src: all, Dst: string(ModeRandom)},
		},
		fsm.Callbacks{
			OnRandom: func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("MODE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
			OnSearch: func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("MODE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}
