package navigation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/storefront-gate/internal/guard"
)

type stubNavigationService struct {
	decision guard.Decision
	err      error
	lastPath string
}

func (s *stubNavigationService) Evaluate(ctx context.Context, path string) (guard.Decision, error) {
	s.lastPath = path
	return s.decision, s.err
}

type stubProbe struct{ ready bool }

func (p *stubProbe) Ready() bool { return p.ready }

func TestCheckAllow(t *testing.T) {
	svc := &stubNavigationService{decision: guard.Allow()}
	handler := Check(svc, &stubProbe{ready: true}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/navigation/check", strings.NewReader(`{"path":"/product/esp-01"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastPath != "/product/esp-01" {
		t.Fatalf("unexpected path passed through: %s", svc.lastPath)
	}

	var envelope struct {
		Data CheckResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Outcome != "allow" {
		t.Fatalf("expected allow, got %s", envelope.Data.Outcome)
	}
	if envelope.Data.Redirect != "" {
		t.Fatalf("allow must not carry a redirect, got %s", envelope.Data.Redirect)
	}
}

func TestCheckRedirect(t *testing.T) {
	svc := &stubNavigationService{decision: guard.RedirectTo("/login")}
	handler := Check(svc, &stubProbe{ready: true}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/navigation/check", strings.NewReader(`{"path":"/checkout"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data CheckResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Outcome != "redirect" || envelope.Data.Redirect != "/login" {
		t.Fatalf("unexpected decision: %+v", envelope.Data)
	}
}

func TestCheckRequiresPath(t *testing.T) {
	handler := Check(&stubNavigationService{decision: guard.Allow()}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/navigation/check", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckDependencyFailure(t *testing.T) {
	svc := &stubNavigationService{err: context.DeadlineExceeded}
	handler := Check(svc, &stubProbe{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/navigation/check", strings.NewReader(`{"path":"/cart"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}
