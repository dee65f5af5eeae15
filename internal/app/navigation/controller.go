package navigation

import (
	"context"

	"github.com/looplab/fsm"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/config/logger"
)

// Placeholder texts shown when there is no active item
const (
	LoadingText   = "Loading advice..."
	NoResultsText = "No advice found. Try another search."
	FailedText    = "Failed to fetch advice. Please try again."
)

// State is a snapshot of the navigation state
type State struct {
	Mode    Mode
	Current *advice.Item
	Results advice.ResultSet
	Index   int
	Loading bool
	Failed  bool
}

// Controller owns the navigation state and exposes its transitions.
// It never performs I/O: callers fetch data and hand the results in.
//
// Search results are discarded whenever the controller returns to random
// mode, so a later search always starts from a fresh result set.
type Controller struct {
	fsm     *fsm.FSM
	current *advice.Item
	results advice.ResultSet
	index   int
	loading bool
	failed  bool
}

// NewController creates a controller in random mode with a load in progress
func NewController(log logger.Logger) *Controller {
	return &Controller{
		fsm:     newModeFSM(log),
		loading: true,
	}
}

// Mode returns the current display mode so callers can dispatch on it
func (c *Controller) Mode() Mode {
	return Mode(c.fsm.Current())
}

// IsLoading reports whether a fetch is outstanding
func (c *Controller) IsLoading() bool {
	return c.loading
}

// HasResults reports whether search mode has at least one item to show
func (c *Controller) HasResults() bool {
	return c.Mode() == ModeSearch && len(c.results) > 0
}

// Index returns the cursor into the result set
func (c *Controller) Index() int {
	return c.index
}

// State returns a copy of the current state
func (c *Controller) State() State {
	s := State{
		Mode:    c.Mode(),
		Index:   c.index,
		Loading: c.loading,
		Failed:  c.failed,
	}

	if c.current != nil {
		item := *c.current
		s.Current = &item
	}

	if c.results != nil {
		s.Results = append(advice.ResultSet{}, c.results...)
	}

	return s
}

// BeginLoad marks a fetch as outstanding
func (c *Controller) BeginLoad() {
	c.loading = true
	c.failed = false
}

// CompleteRandomLoad shows item in random mode and drops any search results
func (c *Controller) CompleteRandomLoad(item advice.Item) {
	c.current = &item
	c.results = nil
	c.index = 0
	c.loading = false
	c.failed = false
	c.event(RandomLoaded)
}

// CompleteSearchLoad shows results in search mode starting at the first item
func (c *Controller) CompleteSearchLoad(results advice.ResultSet) {
	c.results = append(advice.ResultSet{}, results...)
	c.index = 0
	c.loading = false
	c.failed = false
	c.event(SearchLoaded)
}

// FailLoad abandons the outstanding fetch and keeps the previous item visible
func (c *Controller) FailLoad() {
	c.loading = false
	c.failed = true
}

// ResetToRandom leaves search mode, the caller is expected to fetch a random item next.
// The item on screen becomes the current one so a failed fetch still shows it.
func (c *Controller) ResetToRandom() {
	if c.Mode() == ModeSearch {
		c.current = nil
		if c.HasResults() {
			item := c.results[c.index]
			c.current = &item
		}
	}

	c.results = nil
	c.index = 0
	c.loading = true
	c.failed = false
	c.event(Reset)
}

// Advance moves the search cursor by one in the direction of delta and reports whether it moved.
// Only the sign of delta is used, zero and boundary moves are no-ops.
func (c *Controller) Advance(delta int) bool {
	if !c.CanAdvance(delta) {
		return false
	}

	c.index = c.target(delta)

	return true
}

// CanAdvance reports whether Advance(delta) would change the index
func (c *Controller) CanAdvance(delta int) bool {
	if !c.HasResults() || sign(delta) == 0 {
		return false
	}

	return c.target(delta) != c.index
}

// target returns the clamped index one step in the direction of delta
func (c *Controller) target(delta int) int {
	return clamp(c.index+sign(delta), 0, len(c.results)-1)
}

// event fires an FSM event, staying in the same mode is not an error here
func (c *Controller) event(name string) {
	_ = c.fsm.Event(context.Background(), name)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}

	if n > hi {
		return hi
	}

	return n
}
