package maps

import (
	"context"
	"sync/atomic"
	"time"

	"chimney_site_backend/platform/logger"
)

// InitState is the lifecycle of the autocomplete capability. The capability
// resolves asynchronously at bootstrap; callers observe Loading until it is
// Ready or has permanently Failed. This replaces the old frontend's ad hoc
// polling of a globally injected script.
type InitState int32

const (
	StateLoading InitState = iota
	StateReady
	StateFailed
)

func (s InitState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// ClientProvider resolves the places client once, with retry and backoff on
// transient resolution errors. Address suggestion is an enhancement, never a
// requirement: a Failed provider means "no suggestions", not an error.
type ClientProvider struct {
	resolve func() (*Client, error)
	state   atomic.Int32
	client  atomic.Pointer[Client]
	log     *logger.Logger

	attempts  int
	baseDelay time.Duration
}

// NewClientProvider creates a provider around the given resolver. Resolve
// must be called once from the composition root.
func NewClientProvider(resolve func() (*Client, error), log *logger.Logger) *ClientProvider {
	return &ClientProvider{
		resolve:   resolve,
		log:       log,
		attempts:  5,
		baseDelay: 500 * time.Millisecond,
	}
}

// Resolve runs the resolver in the background, retrying with linear backoff
// until it succeeds, permanently fails, or the context is cancelled.
func (p *ClientProvider) Resolve(ctx context.Context) {
	go func() {
		for attempt := 1; attempt <= p.attempts; attempt++ {
			client, err := p.resolve()
			if err == nil {
				if client == nil {
					// Feature not configured; not an error.
					p.state.Store(int32(StateFailed))
					p.log.Info("address autocomplete disabled")
					return
				}
				p.client.Store(client)
				p.state.Store(int32(StateReady))
				p.log.Info("address autocomplete ready")
				return
			}

			p.log.Warn("autocomplete init failed", "attempt", attempt, "error", err.Error())
			select {
			case <-ctx.Done():
				p.state.Store(int32(StateFailed))
				return
			case <-time.After(time.Duration(attempt) * p.baseDelay):
			}
		}
		p.state.Store(int32(StateFailed))
		p.log.Error("autocomplete init failed permanently")
	}()
}

// State returns the current initialization state.
func (p *ClientProvider) State() InitState {
	return InitState(p.state.Load())
}

// Get returns the resolved client, or false while Loading or after Failed.
func (p *ClientProvider) Get() (*Client, bool) {
	if p.State() != StateReady {
		return nil, false
	}
	return p.client.Load(), true
}
