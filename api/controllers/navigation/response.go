package navigation

import "github.com/angelmondragon/storefront-gate/internal/guard"

type CheckResponse struct {
	Path     string `json:"path"`
	Outcome  string `json:"outcome"`
	Redirect string `json:"redirect,omitempty"`
}

func newCheckResponse(path string, decision guard.Decision) CheckResponse {
	resp := CheckResponse{
		Path:    path,
		Outcome: decision.Outcome(),
	}
	if target, ok := decision.Redirect(); ok {
		resp.Redirect = target
	}
	return resp
}
