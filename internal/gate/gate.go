// Package gate holds the one-shot readiness barrier that navigations wait on
// before any authorization decision is made.
package gate

import (
	"context"
	"sync"

	"github.com/angelmondragon/storefront-gate/internal/accounts"
)

// Gate resolves once the account service has finished restoring any persisted
// session. Construct one per process and inject it into the guard; readiness
// is monotonic and never reverts.
type Gate struct {
	stream accounts.Service

	mu      sync.Mutex
	ready   bool
	pending chan struct{}
}

// New builds a gate over the provided account service.
func New(stream accounts.Service) *Gate {
	return &Gate{stream: stream}
}

// WaitForReady blocks until the account service has emitted its first
// auth-state event. It is safe for any number of concurrent callers; exactly
// one subscription is created per gate lifetime. After the first resolution
// every call returns immediately without touching the account service.
//
// The gate itself never times out; bound the wait through ctx.
func (g *Gate) WaitForReady(ctx context.Context) (bool, error) {
	g.mu.Lock()
	if g.ready {
		g.mu.Unlock()
		return true, nil
	}

	start := g.pending == nil
	if start {
		g.pending = make(chan struct{})
	}
	pending := g.pending
	g.mu.Unlock()

	if start {
		g.subscribe(pending)
	}

	select {
	case <-pending:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Ready reports whether the gate has resolved, without blocking.
func (g *Gate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

func (g *Gate) subscribe(pending chan struct{}) {
	var once sync.Once

	// The unsubscribe func is handed to the callback through a buffered
	// channel so an event delivered before OnAuthStateChange returns still
	// observes it.
	unsubCh := make(chan func(), 1)

	// The first event, regardless of payload, marks initialization complete.
	unsubCh <- g.stream.OnAuthStateChange(func(accounts.AuthEvent) {
		once.Do(func() {
			g.mu.Lock()
			g.ready = true
			g.mu.Unlock()
			if unsub := <-unsubCh; unsub != nil {
				unsub()
			}
			close(pending)
		})
	})

	// Force the stream to emit: some backends only notify after the first
	// session check. The result itself is irrelevant here.
	go func() {
		_, _ = g.stream.CurrentSession(context.Background())
	}()
}
