package accounts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	pkgauth "github.com/angelmondragon/storefront-gate/pkg/auth"
	"github.com/angelmondragon/storefront-gate/pkg/auth/session"
	"github.com/angelmondragon/storefront-gate/pkg/config"
	pkgerrors "github.com/angelmondragon/storefront-gate/pkg/errors"
	"github.com/angelmondragon/storefront-gate/pkg/kv"
	"github.com/angelmondragon/storefront-gate/pkg/logger"
)

// accessTokenKey is where the device keeps the token the account service
// issued on the last sign-in.
const accessTokenKey = "auth_token_v1"

// Client restores sessions from the persisted access token and verifies them
// against the remote session store.
type Client struct {
	cfg      config.JWTConfig
	tokens   kv.Store
	sessions session.AccessSessionChecker
	logg     *logger.Logger

	mu       sync.Mutex
	subs     map[uint64]func(AuthEvent)
	nextSub  uint64
	emitted  bool
	signedIn bool
}

// NewClient builds the account service client.
func NewClient(cfg config.JWTConfig, tokens kv.Store, sessions session.AccessSessionChecker, logg *logger.Logger) (*Client, error) {
	if tokens == nil {
		return nil, fmt.Errorf("token store required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session checker required")
	}
	return &Client{
		cfg:      cfg,
		tokens:   tokens,
		sessions: sessions,
		logg:     logg,
		subs:     map[uint64]func(AuthEvent){},
	}, nil
}

// CurrentSession resolves the current session state. A nil session with nil
// error means "signed out"; an error means the state could not be determined
// (dependency failure) and callers must fail toward "signed out".
//
// Every completed lookup feeds the auth-state stream: the first one emits
// AuthEventInitialSession regardless of outcome, later ones emit only when
// the signed-in state flips.
func (c *Client) CurrentSession(ctx context.Context) (*Session, error) {
	sess, err := c.lookup(ctx)
	c.notify(sess)
	return sess, err
}

// OnAuthStateChange registers fn for auth-state events. The returned
// unsubscribe func is idempotent.
func (c *Client) OnAuthStateChange(fn func(AuthEvent)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Client) lookup(ctx context.Context) (*Session, error) {
	raw, err := c.tokens.Get(ctx, accessTokenKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read persisted token")
	}

	claims, err := pkgauth.ParseAccessToken(c.cfg, raw)
	if err != nil {
		// Expired or malformed token on disk means signed out, not failure.
		if c.logg != nil {
			c.logg.Debug(ctx, "persisted token rejected, treating as signed out")
		}
		return nil, nil
	}

	ok, err := c.sessions.HasSession(ctx, claims.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session")
	}
	if !ok {
		return nil, nil
	}

	return &Session{AccessID: claims.ID, UserID: claims.UserID}, nil
}

func (c *Client) notify(sess *Session) {
	c.mu.Lock()

	var event AuthEvent
	switch {
	case !c.emitted:
		c.emitted = true
		c.signedIn = sess != nil
		event = AuthEvent{Type: AuthEventInitialSession, Session: sess}
	case sess != nil && !c.signedIn:
		c.signedIn = true
		event = AuthEvent{Type: AuthEventSignedIn, Session: sess}
	case sess == nil && c.signedIn:
		c.signedIn = false
		event = AuthEvent{Type: AuthEventSignedOut}
	default:
		c.mu.Unlock()
		return
	}

	listeners := make([]func(AuthEvent), 0, len(c.subs))
	for _, fn := range c.subs {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(event)
	}
}
