// Package theme exposes the dark-mode preference over HTTP.
package theme

import (
	"context"
	"net/http"

	"github.com/angelmondragon/storefront-gate/api/responses"
	"github.com/angelmondragon/storefront-gate/api/validators"
	pkgerrors "github.com/angelmondragon/storefront-gate/pkg/errors"
	"github.com/angelmondragon/storefront-gate/pkg/logger"
)

// Service is the preference surface the handlers depend on.
type Service interface {
	Dark() bool
	Toggle(ctx context.Context) (bool, error)
	Set(ctx context.Context, dark bool) (bool, error)
}

type ThemeResponse struct {
	Dark bool `json:"dark"`
}

type SetRequest struct {
	Dark *bool `json:"dark" validate:"required"`
}

func Fetch(svc Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "theme unavailable"))
			return
		}
		responses.WriteSuccess(w, ThemeResponse{Dark: svc.Dark()})
	}
}

func Toggle(svc Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "theme unavailable"))
			return
		}

		dark, err := svc.Toggle(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ThemeResponse{Dark: dark})
	}
}

func Update(svc Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "theme unavailable"))
			return
		}

		var payload SetRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dark, err := svc.Set(r.Context(), *payload.Dark)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ThemeResponse{Dark: dark})
	}
}
