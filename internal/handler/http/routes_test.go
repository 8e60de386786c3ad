package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/validators"
	"github.com/MKhiriev/go-account-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServer wires the full router on top of the in-memory repository.
func newTestServer(t *testing.T, security config.Security) *httptest.Server {
	t.Helper()

	log := logger.Nop()
	appInfo, err := service.NewAppInfoService(config.App{Name: "Account REST API Service", Version: "1.2.3"}, log)
	require.NoError(t, err)

	services := &service.Services{
		AccountService: service.NewAccountService(store.NewMemoryAccountRepository(log), validators.NewAccountValidator(), log),
		AppInfoService: appInfo,
	}

	srv := httptest.NewServer(NewHandler(services, security, metrics.NewHTTP(), log).Init())
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url, contentType string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func postJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return doRequest(t, http.MethodPost, url, "application/json", buf)
}

func decodeResponse[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	security := config.Security{ForceHTTPS: true}
	m := metrics.NewHTTP()
	log := logger.Nop()

	h := NewHandler(svc, security, m, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, security, h.security)
	assert.Same(t, m, h.metrics)
	assert.Same(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Account lifecycle
// ─────────────────────────────────────────────

func TestRoutes_AccountLifecycle(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	resp := postJSON(t, srv.URL+"/accounts", alice())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	location := resp.Header.Get("Location")
	require.NotEmpty(t, location)

	created := decodeResponse[models.Account](t, resp)
	assert.Positive(t, created.ID)
	assert.Equal(t, fmt.Sprintf("/accounts/%d", created.ID), location)
	assert.Equal(t, "Alice", created.Name)
	assert.False(t, created.DateJoined.IsZero())

	resp = doRequest(t, http.MethodGet, srv.URL+location, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decodeResponse[models.Account](t, resp))

	resp = doRequest(t, http.MethodDelete, srv.URL+location, "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, srv.URL+location, "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeResponse[models.ErrorResponse](t, resp).Message, "was not found")
}

func TestRoutes_UpdateAccount(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	resp := postJSON(t, srv.URL+"/accounts", alice())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeResponse[models.Account](t, resp)

	changed := created.Payload()
	changed.Name = "Alicia"
	body := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(body).Encode(map[string]any{
		"id":           999,
		"name":         changed.Name,
		"email":        changed.Email,
		"address":      changed.Address,
		"phone_number": changed.PhoneNumber,
		"date_joined":  "1999-01-01",
	}))

	resp = doRequest(t, http.MethodPut, srv.URL+resp.Header.Get("Location"), "application/json", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decodeResponse[models.Account](t, resp)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.DateJoined, updated.DateJoined)
	assert.Equal(t, created.Email, updated.Email)
}

func TestRoutes_UpdateMissingAccount(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	resp := doRequest(t, http.MethodPut, srv.URL+"/accounts/0", "application/json", strings.NewReader(`{}`))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeResponse[models.ErrorResponse](t, resp).Message, "was not found")

	resp = doRequest(t, http.MethodPut, srv.URL+"/accounts/12345", "application/json", strings.NewReader(`{}`))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutes_DeleteMissingAccount(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	resp := doRequest(t, http.MethodDelete, srv.URL+"/accounts/12345", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRoutes_ListAccounts(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d accounts", n), func(t *testing.T) {
			srv := newTestServer(t, config.Security{})

			for i := range n {
				payload := alice()
				payload.Name = fmt.Sprintf("user-%d", i)
				require.Equal(t, http.StatusCreated, postJSON(t, srv.URL+"/accounts", payload).StatusCode)
			}

			resp := doRequest(t, http.MethodGet, srv.URL+"/accounts", "", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Len(t, decodeResponse[[]models.Account](t, resp), n)
		})
	}
}

func TestRoutes_CreateRejectsBadRequests(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{name: "text/plain", contentType: "text/plain", body: `{"name":"Alice"}`, wantStatus: http.StatusUnsupportedMediaType},
		{name: "no content type", body: `{"name":"Alice"}`, wantStatus: http.StatusUnsupportedMediaType},
		{name: "missing fields", contentType: "application/json", body: `{"name":"Alice"}`, wantStatus: http.StatusBadRequest},
		{name: "malformed JSON", contentType: "application/json", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "junk after date", contentType: "application/json", body: `{"name":"Alice","email":"a@b.c","address":"x","phone_number":"1","date_joined":"2020-02-03junk"}`, wantStatus: http.StatusBadRequest},
		{name: "name too long", contentType: "application/json", body: `{"name":"` + strings.Repeat("a", 65) + `","email":"a@b.c","address":"x","phone_number":"1"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, http.MethodPost, srv.URL+"/accounts", tt.contentType, strings.NewReader(tt.body))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeResponse[models.ErrorResponse](t, resp)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.NotEmpty(t, body.Message)
		})
	}
}

// ─────────────────────────────────────────────
// Index, health, metrics, unknown paths
// ─────────────────────────────────────────────

func TestRoutes_Index(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse[models.IndexResponse](t, resp)
	assert.Equal(t, "Account REST API Service", body.Name)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Equal(t, "/accounts", body.Paths)
}

func TestRoutes_Health(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK"}`, string(raw))
}

func TestRoutes_Metrics(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	doRequest(t, http.MethodGet, srv.URL+"/accounts/77", "", nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `route="/accounts/{id}"`)
	assert.Contains(t, string(raw), `status="404"`)
}

func TestRoutes_UnknownPath(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/nope", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, decodeResponse[models.ErrorResponse](t, resp).Status)
}

// ─────────────────────────────────────────────
// Method not allowed
// ─────────────────────────────────────────────

func TestRoutes_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	tests := []struct {
		method    string
		path      string
		wantAllow string
	}{
		{method: http.MethodDelete, path: "/accounts", wantAllow: "GET, POST"},
		{method: http.MethodPut, path: "/accounts", wantAllow: "GET, POST"},
		{method: http.MethodPost, path: "/accounts/1", wantAllow: "GET, PUT, DELETE"},
		{method: http.MethodPatch, path: "/accounts/1", wantAllow: "GET, PUT, DELETE"},
		{method: http.MethodPost, path: "/health", wantAllow: "GET"},
		{method: http.MethodDelete, path: "/", wantAllow: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := doRequest(t, tt.method, srv.URL+tt.path, "application/json", strings.NewReader(`{}`))

			require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
			assert.Equal(t, tt.wantAllow, resp.Header.Get("Allow"))
			assert.Equal(t, "Method Not Allowed", decodeResponse[models.ErrorResponse](t, resp).Error)
			assert.Equal(t, "SAMEORIGIN", resp.Header.Get("X-Frame-Options"))
		})
	}
}

// ─────────────────────────────────────────────
// Security headers and transport
// ─────────────────────────────────────────────

func TestRoutes_SecurityHeaders(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	for _, path := range []string{"/", "/health", "/accounts", "/accounts/404", "/missing"} {
		t.Run(path, func(t *testing.T) {
			resp := doRequest(t, http.MethodGet, srv.URL+path, "", nil)

			assert.Equal(t, "SAMEORIGIN", resp.Header.Get("X-Frame-Options"))
			assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
			assert.Equal(t, "default-src 'self'; object-src 'none'", resp.Header.Get("Content-Security-Policy"))
			assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"))
			assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
		})
	}
}

func TestRoutes_NoRedirectByDefault(t *testing.T) {
	srv := newTestServer(t, config.Security{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_ForceHTTPS(t *testing.T) {
	srv := newTestServer(t, config.Security{ForceHTTPS: true, HSTSSeconds: 31536000})

	resp := doRequest(t, http.MethodGet, srv.URL+"/health", "", nil)
	require.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "https://"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Forwarded-Proto", "https")
	proxied, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer proxied.Body.Close()

	assert.Equal(t, http.StatusOK, proxied.StatusCode)
	assert.Contains(t, proxied.Header.Get("Strict-Transport-Security"), "max-age=31536000")
}

func TestRoutes_CORS(t *testing.T) {
	srv := newTestServer(t, config.Security{CORSAllowedOrigins: []string{"https://app.example.com"}})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/accounts", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	req, err = http.NewRequest(http.MethodGet, srv.URL+"/accounts", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://evil.example.com")
	denied, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer denied.Body.Close()

	assert.Empty(t, denied.Header.Get("Access-Control-Allow-Origin"))
}

func TestRoutes_WithoutMetrics(t *testing.T) {
	log := logger.Nop()
	appInfo, err := service.NewAppInfoService(config.App{Name: "n", Version: "v"}, log)
	require.NoError(t, err)

	h := NewHandler(&service.Services{AppInfoService: appInfo}, config.Security{}, nil, log)
	router := h.Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
