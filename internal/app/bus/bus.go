//go:generate mockgen -source=bus.go -destination=bus_mock.go -package=bus
package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/config"
	"adviceslip/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventRandomLoaded MessageType = "random_loaded"
	EventSearchLoaded MessageType = "search_loaded"
	EventFetchFailed  MessageType = "fetch_failed"
)

// Command types
const (
	CommandFetchRandom MessageType = "cmd_fetch_random"
	CommandSearch      MessageType = "cmd_search"
)

// Message represents a bus message (event or command)
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// FetchRandom requests one random item
type FetchRandom struct {
	RequestID uint64
}

// Search requests every item matching Query
type Search struct {
	RequestID uint64
	Query     string
}

// RandomLoaded carries the item fetched for a FetchRandom request
type RandomLoaded struct {
	RequestID uint64
	Item      advice.Item
}

// SearchLoaded carries the results fetched for a Search request
type SearchLoaded struct {
	RequestID uint64
	Query     string
	Results   advice.ResultSet
}

// FetchFailed reports a request that could not be completed
type FetchFailed struct {
	RequestID uint64
	Error     error
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	cfg         *config.Config
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	return &bus{
		cfg:         cfg,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.cfg.Bus.Buffer)

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case FetchRandom:
		return fmt.Sprintf("{request: %d}", d.RequestID)
	case Search:
		return fmt.Sprintf("{request: %d, query: %q}", d.RequestID, d.Query)
	case RandomLoaded:
		return fmt.Sprintf("{request: %d, id: %d}", d.RequestID, d.Item.ID)
	case SearchLoaded:
		return fmt.Sprintf("{request: %d, query: %q, results: %d}", d.RequestID, d.Query, len(d.Results))
	case FetchFailed:
		return fmt.Sprintf("{request: %d, error: %v}", d.RequestID, d.Error)
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
