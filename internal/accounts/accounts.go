// Package accounts is the gateway-side client of the remote account service.
// It restores the persisted session on demand and broadcasts auth-state
// changes to subscribers; it never signs users in or out.
package accounts

import (
	"context"

	"github.com/google/uuid"
)

// Session is proof of an authenticated identity. Callers must treat a nil
// *Session as "signed out" and never cache it across navigations.
type Session struct {
	AccessID string
	UserID   uuid.UUID
}

// AuthEventType tags the auth-state notifications emitted by the client.
type AuthEventType string

const (
	// AuthEventInitialSession is emitted exactly once, when the first
	// session restoration attempt completes (successfully or not).
	AuthEventInitialSession AuthEventType = "INITIAL_SESSION"
	AuthEventSignedIn       AuthEventType = "SIGNED_IN"
	AuthEventSignedOut      AuthEventType = "SIGNED_OUT"
)

// AuthEvent describes one observed auth-state transition. Session is nil for
// signed-out states.
type AuthEvent struct {
	Type    AuthEventType
	Session *Session
}

// Service is the account surface the gate and guard depend on.
//
// OnAuthStateChange registers a callback for auth-state events and returns an
// idempotent unsubscribe func. Implementations must not invoke the callback
// synchronously from within OnAuthStateChange itself.
type Service interface {
	CurrentSession(ctx context.Context) (*Session, error)
	OnAuthStateChange(fn func(AuthEvent)) (unsubscribe func())
}
