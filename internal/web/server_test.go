package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"greenscape/internal/config"
)

// newTestServer builds a server with default settings and a silent logger.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(config.DefaultSettings(), zap.NewNop())
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestRouting(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"home", http.MethodGet, "/", http.StatusOK},
		{"contact page", http.MethodGet, "/contact", http.StatusOK},
		{"contact fragment", http.MethodGet, "/contact/form", http.StatusOK},
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"robots", http.MethodGet, "/static/robots.txt", http.StatusOK},
		{"stylesheet", http.MethodGet, "/static/css/site.css", http.StatusOK},
		{"unknown page", http.MethodGet, "/pricing", http.StatusNotFound},
		{"nested unknown", http.MethodGet, "/contact/nope", http.StatusNotFound},
		{"wrong method on home", http.MethodPost, "/", http.StatusMethodNotAllowed},
		{"wrong method on contact", http.MethodDelete, "/contact", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			s.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandleIndex(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<h1>") {
		t.Error("home page should contain an <h1> element")
	}
	if !strings.Contains(body, siteName) {
		t.Errorf("home page should mention %q", siteName)
	}
}

func TestHandleContactPage(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/contact")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, want := range []string{
		"data-signals=",
		`data-bind="email"`,
		"@post('/contact', {contentType: 'form'})",
		`<option value="mowing">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("contact page missing %q", want)
		}
	}
}

func TestNotFoundPage(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/no-such-page")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Error 404") {
		t.Error("404 page should show the status code")
	}
	if !strings.Contains(body, "Page Not Found") {
		t.Error("404 page should show its title")
	}
}

func TestMethodNotAllowedPage(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/contact", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	if !strings.Contains(w.Body.String(), "Method Not Allowed") {
		t.Error("405 page should show its title")
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal health response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Status = %q, want %q", resp.Status, "healthy")
	}
	if resp.Name == "" || resp.Version == "" {
		t.Errorf("Name/Version should be populated, got %q/%q", resp.Name, resp.Version)
	}
	if resp.Uptime == "" {
		t.Error("Uptime should be populated")
	}
}

func TestStaticGzip(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if enc := w.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Errorf("Content-Encoding = %q, want %q", enc, "gzip")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer(t)

	t.Run("generates an id", func(t *testing.T) {
		w := get(t, s, "/health")
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("response should carry a generated X-Request-ID")
		}
	})

	t.Run("honors a client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "client-chosen-id")
		w := httptest.NewRecorder()
		s.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "client-chosen-id" {
			t.Errorf("X-Request-ID = %q, want %q", got, "client-chosen-id")
		}
	})
}

func TestGetRequestID_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(w.Body.String(), "Internal Server Error") {
		t.Error("panic should render the 500 error page")
	}
}
