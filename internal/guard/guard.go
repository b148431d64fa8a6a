// Package guard evaluates every navigation attempt against the session and
// role state exposed by the account service.
package guard

import (
	"context"
	"fmt"

	"github.com/angelmondragon/storefront-gate/internal/accounts"
	pkgerrors "github.com/angelmondragon/storefront-gate/pkg/errors"
	"github.com/angelmondragon/storefront-gate/pkg/logger"
	"github.com/google/uuid"
)

const (
	loginPath = "/login"
	homePath  = "/"

	roleAdmin = "admin"
)

type readinessGate interface {
	WaitForReady(ctx context.Context) (bool, error)
}

type sessionSource interface {
	CurrentSession(ctx context.Context) (*accounts.Session, error)
}

type roleSource interface {
	RoleByUser(ctx context.Context, userID uuid.UUID) (string, error)
}

// Guard decides allow/redirect per navigation. Evaluations are independent of
// each other; concurrent navigations share nothing but the (idempotent) gate.
type Guard struct {
	gate     readinessGate
	sessions sessionSource
	roles    roleSource
	table    *Table
	logg     *logger.Logger
}

// New builds a guard over the provided stack.
func New(gate readinessGate, sessions sessionSource, roles roleSource, table *Table, logg *logger.Logger) (*Guard, error) {
	if gate == nil {
		return nil, fmt.Errorf("readiness gate required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session source required")
	}
	if roles == nil {
		return nil, fmt.Errorf("role source required")
	}
	if table == nil {
		return nil, fmt.Errorf("route table required")
	}
	return &Guard{
		gate:     gate,
		sessions: sessions,
		roles:    roles,
		table:    table,
		logg:     logg,
	}, nil
}

// Evaluate produces the authorization decision for navigating to path.
//
// Every domain failure maps to a safe decision: a failed session fetch counts
// as "no session", and a failed role lookup redirects to the login page
// (fail-closed) rather than granting admin access. The returned error is
// non-nil only when ctx expires while waiting on the readiness gate.
func (g *Guard) Evaluate(ctx context.Context, path string) (Decision, error) {
	if _, err := g.gate.WaitForReady(ctx); err != nil {
		return Decision{}, err
	}

	route := g.table.Lookup(path)

	sess, err := g.sessions.CurrentSession(ctx)
	if err != nil {
		// Fail toward requiring login; never treat a fetch failure as
		// "logged in".
		if g.logg != nil {
			g.logg.Warn(g.logg.WithRoute(ctx, path), "session fetch failed, treating as signed out")
		}
		sess = nil
	}

	if (route.RequiresAuth || route.RequiresAdmin) && sess == nil {
		return RedirectTo(loginPath), nil
	}

	if route.RequiresAdmin {
		role, err := g.roles.RoleByUser(ctx, sess.UserID)
		switch {
		case pkgerrors.IsCode(err, pkgerrors.CodeNotFound):
			// No role record: an ordinary signed-in shopper.
			return RedirectTo(homePath), nil
		case err != nil:
			if g.logg != nil {
				g.logg.Error(g.logg.WithRoute(ctx, path), "role lookup failed, denying admin route", err)
			}
			return RedirectTo(loginPath), nil
		case role != roleAdmin:
			return RedirectTo(homePath), nil
		}
	}

	return Allow(), nil
}
