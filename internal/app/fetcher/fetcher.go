package fetcher

import (
	"context"
	"sync"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/app/bus"
	"adviceslip/internal/config/logger"
)

// Fetcher executes fetch commands from the bus against the advice api and publishes the outcome.
// Commands are handled one at a time, so at most one request is outstanding.
type Fetcher interface {
	Start(ctx context.Context)
	Stop()
}

type fetcher struct {
	bus    bus.Bus
	source advice.Source
	log    logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a fetcher bound to the bus and advice source
func New(b bus.Bus, source advice.Source, log logger.Logger) Fetcher {
	return &fetcher{
		bus:    b,
		source: source,
		log:    log,
	}
}

// Start subscribes to the bus before returning and processes commands until Stop or ctx is done
func (f *fetcher) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	commands := f.bus.Subscribe(ctx)

	f.cancel = cancel
	f.done = make(chan struct{})

	go f.loop(ctx, commands, f.done)

	f.log.Debug().Msg("Fetcher started")
}

// Stop cancels the in-flight request, if any, and waits for the loop to exit
func (f *fetcher) Stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel, f.done = nil, nil
	f.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done

	f.log.Debug().Msg("Fetcher stopped")
}

func (f *fetcher) loop(ctx context.Context, commands <-chan bus.Message, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-commands:
			if !ok {
				return
			}

			f.handle(ctx, msg)
		}
	}
}

// handle runs a single command, events published by others are ignored
func (f *fetcher) handle(ctx context.Context, msg bus.Message) {
	switch msg.Type {
	case bus.CommandFetchRandom:
		data, ok := msg.Data.(bus.FetchRandom)
		if !ok {
			f.log.Error().Msg("Invalid FetchRandom command data")
			return
		}

		f.fetchRandom(ctx, data)

	case bus.CommandSearch:
		data, ok := msg.Data.(bus.Search)
		if !ok {
			f.log.Error().Msg("Invalid Search command data")
			return
		}

		f.search(ctx, data)
	}
}

func (f *fetcher) fetchRandom(ctx context.Context, cmd bus.FetchRandom) {
	item, err := f.source.Random(ctx)
	if err != nil {
		f.fail(ctx, cmd.RequestID, err)
		return
	}

	f.bus.Publish(bus.Message{
		Type:     bus.EventRandomLoaded,
		Data:     bus.RandomLoaded{RequestID: cmd.RequestID, Item: item},
		Critical: true,
	})
}

func (f *fetcher) search(ctx context.Context, cmd bus.Search) {
	results, err := f.source.Search(ctx, cmd.Query)
	if err != nil {
		f.fail(ctx, cmd.RequestID, err)
		return
	}

	f.bus.Publish(bus.Message{
		Type:     bus.EventSearchLoaded,
		Data:     bus.SearchLoaded{RequestID: cmd.RequestID, Query: cmd.Query, Results: results},
		Critical: true,
	})
}

// fail publishes a failure unless the fetcher itself is shutting down
func (f *fetcher) fail(ctx context.Context, requestID uint64, err error) {
	if ctx.Err() != nil {
		return
	}

	f.log.Warn().Err(err).Uint64("request", requestID).Msg("Fetch failed")

	f.bus.Publish(bus.Message{
		Type:     bus.EventFetchFailed,
		Data:     bus.FetchFailed{RequestID: requestID, Error: err},
		Critical: true,
	})
}
