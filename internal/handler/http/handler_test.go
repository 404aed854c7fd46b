package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fintest/plaidbox/internal/config"
	"github.com/fintest/plaidbox/internal/crypto"
	"github.com/fintest/plaidbox/internal/logger"
	"github.com/fintest/plaidbox/internal/service"
	"github.com/fintest/plaidbox/internal/session"
	"github.com/fintest/plaidbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = models.CredentialRecord{
	ClientID:    "client-id-1",
	Secret:      "client-secret-1",
	Environment: models.EnvironmentSandbox,
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			SecretKey:      "test-secret-key",
			SessionSignKey: "test-sign-key",
			Environment:    "development",
			Version:        "test",
		},
		Session:  config.Session{TTL: 24 * time.Hour},
		Webhooks: config.Webhooks{RateLimit: 30, RateWindow: time.Minute},
	}
}

func defaultTestServices() *service.Services {
	return &service.Services{
		WebhookIngestService: &mockIngestService{},
		WebhookQueryService:  &mockQueryService{},
		CredentialService:    &mockCredentialService{},
		LinkService:          &mockLinkService{},
		ItemReadService:      &mockItemReadService{},
		AppInfoService:       &mockAppInfoService{version: "test-version"},
	}
}

// newTestHandler wires a Handler over mocked services and a real credential
// store backed by a temp session directory.
func newTestHandler(t *testing.T, svcs *service.Services) (*Handler, *session.CredentialStore) {
	t.Helper()

	cfg := testConfig()
	cfg.Session.Dir = t.TempDir()

	files, err := session.NewFileStore(cfg.Session)
	require.NoError(t, err)

	credStore := session.NewCredentialStore(
		files,
		crypto.NewCredentialCodec(cfg.App.SecretKey),
		cfg.App,
		cfg.Session,
		logger.Nop(),
	)

	return NewHandler(svcs, credStore, cfg, logger.Nop()), credStore
}

// authCookies establishes a session for testCreds and returns the cookies a
// browser would carry on the next request.
func authCookies(t *testing.T, credStore *session.CredentialStore) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, credStore.Store(rec, httptest.NewRequest(http.MethodPost, "/", nil), testCreds, false))

	return rec.Result().Cookies()
}

// authedRequest builds a request carrying a live session.
func authedRequest(t *testing.T, credStore *session.CredentialStore, method, target string, body string) *http.Request {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	for _, c := range authCookies(t, credStore) {
		r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return r
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h, _ := newTestHandler(t, defaultTestServices())
	require.NotNil(t, h)
}

func TestNewHandler_DevModeFollowsEnvironment(t *testing.T) {
	h, _ := newTestHandler(t, defaultTestServices())
	assert.True(t, h.devMode, "development environment must enable detailed errors")
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register. Authenticated
// routes answer 401 without a session, never 404/405.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/webhooks"},

	{http.MethodPost, "/api/credentials"},
	{http.MethodPost, "/api/credentials/logout"},
	{http.MethodGet, "/api/credentials/status"},
	{http.MethodGet, "/api/version"},

	{http.MethodGet, "/api/webhooks"},
	{http.MethodDelete, "/api/webhooks"},
	{http.MethodGet, "/api/webhooks/stats"},
	{http.MethodGet, "/api/webhooks/export"},
	{http.MethodPost, "/api/items"},
	{http.MethodPost, "/api/link/token"},
	{http.MethodPost, "/api/link/exchange"},
	{http.MethodGet, "/api/accounts"},
	{http.MethodGet, "/api/identity"},
	{http.MethodGet, "/api/auth"},
	{http.MethodGet, "/api/balance"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newTestHandler(t, defaultTestServices())
	router := h.Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route must exist")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, "method must be registered")
		})
	}
}

func TestInit_UnknownRouteIs404(t *testing.T) {
	h, _ := newTestHandler(t, defaultTestServices())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t, defaultTestServices())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_PropagatesCallerTraceID(t *testing.T) {
	h, _ := newTestHandler(t, defaultTestServices())
	router := h.Init()

	r := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	r.Header.Set(traceIDHeader, "trace-from-caller")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)

	assert.Equal(t, "trace-from-caller", rec.Header().Get(traceIDHeader))
}

func TestVersionEndpoint(t *testing.T) {
	h, _ := newTestHandler(t, defaultTestServices())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
}
