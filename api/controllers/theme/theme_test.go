package theme

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubThemeService struct {
	dark bool
	err  error
}

func (s *stubThemeService) Dark() bool { return s.dark }

func (s *stubThemeService) Toggle(ctx context.Context) (bool, error) {
	if s.err != nil {
		return s.dark, s.err
	}
	s.dark = !s.dark
	return s.dark, nil
}

func (s *stubThemeService) Set(ctx context.Context, dark bool) (bool, error) {
	if s.err != nil {
		return s.dark, s.err
	}
	s.dark = dark
	return s.dark, nil
}

func decodeTheme(t *testing.T, resp *httptest.ResponseRecorder) ThemeResponse {
	t.Helper()
	var envelope struct {
		Data ThemeResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestFetchReportsPreference(t *testing.T) {
	handler := Fetch(&stubThemeService{dark: true}, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/theme", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !decodeTheme(t, resp).Dark {
		t.Fatal("expected dark preference")
	}
}

func TestToggleFlips(t *testing.T) {
	handler := Toggle(&stubThemeService{dark: false}, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/theme/toggle", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !decodeTheme(t, resp).Dark {
		t.Fatal("expected dark after toggle")
	}
}

func TestUpdateRequiresDarkField(t *testing.T) {
	handler := Update(&stubThemeService{}, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodPut, "/api/v1/theme", strings.NewReader(`{}`)))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestToggleSurfacesPersistFailure(t *testing.T) {
	handler := Toggle(&stubThemeService{err: errors.New("disk full")}, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/theme/toggle", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
