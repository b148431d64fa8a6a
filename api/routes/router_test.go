package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/storefront-gate/internal/cart"
	"github.com/angelmondragon/storefront-gate/internal/guard"
	"github.com/angelmondragon/storefront-gate/internal/theme"
	"github.com/angelmondragon/storefront-gate/pkg/config"
	"github.com/angelmondragon/storefront-gate/pkg/kv"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubNavigation struct{}

func (stubNavigation) Evaluate(ctx context.Context, path string) (guard.Decision, error) {
	if path == "/admin" {
		return guard.RedirectTo("/login"), nil
	}
	return guard.Allow(), nil
}

type stubProbe struct{}

func (stubProbe) Ready() bool { return true }

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Env: config.AppEnvDev, Port: "8080"},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	cartStore, err := cart.NewStore(ctx, kv.NewMemory(), nil)
	if err != nil {
		t.Fatalf("cart store: %v", err)
	}
	themeStore, err := theme.NewStore(ctx, kv.NewMemory(), nil, false)
	if err != nil {
		t.Fatalf("theme store: %v", err)
	}

	return NewRouter(testConfig(), nil, stubPinger{}, stubPinger{}, stubNavigation{}, stubProbe{}, cartStore, themeStore, nil)
}

func TestRouterHealthAndPing(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/api/public/ping"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestRouterNavigationCheck(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/navigation/check", strings.NewReader(`{"path":"/admin"}`))
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data struct {
			Outcome  string `json:"outcome"`
			Redirect string `json:"redirect"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Outcome != "redirect" || envelope.Data.Redirect != "/login" {
		t.Fatalf("unexpected decision: %+v", envelope.Data)
	}
}

func TestRouterCartRoundtrip(t *testing.T) {
	router := newTestRouter(t)

	body := `{"product_id":1,"code":"ESP-01","name":"Espresso Blend","size_name":"M","unit_price":"4.50","quantity":2}`
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)))
	if resp.Code != http.StatusCreated {
		t.Fatalf("add: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("fetch: expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"total_items":2`) {
		t.Fatalf("unexpected cart payload: %s", resp.Body.String())
	}
}

func TestRouterThemeUpdatePreflight(t *testing.T) {
	router := newTestRouter(t)

	for _, method := range []string{http.MethodPut, http.MethodPost, http.MethodGet} {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/theme/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", method)

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Fatalf("%s preflight: expected allowed origin, got %q", method, got)
		}
		if got := resp.Header().Get("Access-Control-Allow-Methods"); got != method {
			t.Fatalf("%s preflight: expected method allowed, got %q", method, got)
		}
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
