//go:generate mockgen -source=controller.go -destination=controller_mock.go -package=slips
package slips

import (
	"sync/atomic"

	"adviceslip/internal/app/bus"
)

// Controller turns user intents into fetch commands on the bus
type Controller interface {
	// FetchRandom requests a random slip and returns the request id
	FetchRandom() uint64
	// Search requests every slip matching query and returns the request id
	Search(query string) uint64
}

// controller implements the Controller interface
type controller struct {
	bus bus.Bus
	seq atomic.Uint64
}

// NewController creates a new controller with the given bus
func NewController(b bus.Bus) Controller {
	return &controller{
		bus: b,
	}
}

// FetchRandom publishes a random slip command
func (c *controller) FetchRandom() uint64 {
	id := c.seq.Add(1)

	c.bus.Publish(bus.Message{
		Type:     bus.CommandFetchRandom,
		Data:     bus.FetchRandom{RequestID: id},
		Critical: true,
	})

	return id
}

// Search publishes a search command for an already normalized query
func (c *controller) Search(query string) uint64 {
	id := c.seq.Add(1)

	c.bus.Publish(bus.Message{
		Type:     bus.CommandSearch,
		Data:     bus.Search{RequestID: id, Query: query},
		Critical: true,
	})

	return id
}
