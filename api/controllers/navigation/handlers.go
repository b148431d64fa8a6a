// Package navigation exposes the route authorization surface: the SPA posts
// the path it wants to enter and receives an allow or redirect decision.
package navigation

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/storefront-gate/api/responses"
	"github.com/angelmondragon/storefront-gate/api/validators"
	"github.com/angelmondragon/storefront-gate/internal/guard"
	pkgerrors "github.com/angelmondragon/storefront-gate/pkg/errors"
	"github.com/angelmondragon/storefront-gate/pkg/logger"
	"github.com/angelmondragon/storefront-gate/pkg/metrics"
)

// Service is the decision surface the handlers depend on.
type Service interface {
	Evaluate(ctx context.Context, path string) (guard.Decision, error)
}

// ReadinessProbe reports whether the readiness gate has already resolved,
// without blocking.
type ReadinessProbe interface {
	Ready() bool
}

// Check evaluates the requested path against the route table and reports the
// resulting decision.
func Check(svc Service, probe ReadinessProbe, m *metrics.NavigationMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "navigation service unavailable"))
			return
		}

		var payload CheckRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		wasReady := probe == nil || probe.Ready()
		start := time.Now()

		decision, err := svc.Evaluate(r.Context(), payload.Path)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness wait interrupted"))
			return
		}

		if m != nil {
			if !wasReady {
				m.ObserveReadinessWait(time.Since(start))
			}
			m.ObserveDecision(decision.Outcome())
		}

		responses.WriteSuccess(w, newCheckResponse(payload.Path, decision))
	}
}
