// Package testutils builds a wallet API instance over the in-memory store
// for handler tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Elias-Manica/My-wallet-back/internal/fixtures/memstore"
	"github.com/Elias-Manica/My-wallet-back/pkg/config"
	authsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/auth"
	walletsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/wallet"
	"github.com/Elias-Manica/My-wallet-back/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// TestApp bundles the Fiber app with the services and store behind it.
type TestApp struct {
	App       *fiber.App
	Store     *memstore.Store
	AuthSvc   *authsvc.Service
	WalletSvc *walletsvc.Service
}

// NewTestApp wires the full route surface over a fresh in-memory store.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()
	store := memstore.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uow := store.UnitOfWork()
	aSvc := authsvc.New(uow, logger)
	wSvc := walletsvc.New(uow, logger)
	cfg := &config.AppConfig{
		Env: "test",
		RateLimit: config.RateLimitConfig{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
	}
	return &TestApp{
		App:       webapi.SetupApp(aSvc, wSvc, cfg),
		Store:     store,
		AuthSvc:   aSvc,
		WalletSvc: wSvc,
	}
}

// Request performs an HTTP request against the app. A non-empty token is
// sent as a bearer Authorization header; a nil body sends no payload.
func (ta *TestApp) Request(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := ta.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeJSON reads the full response body into out.
func DecodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// SignUpAndLogin registers a user and returns a valid bearer token.
func (ta *TestApp) SignUpAndLogin(t *testing.T, name, email, password string) string {
	t.Helper()
	resp := ta.Request(t, fiber.MethodPost, "/sign-up", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = ta.Request(t, fiber.MethodPost, "/login", fiber.Map{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body struct {
		Email string `json:"email"`
		Token string `json:"token"`
	}
	DecodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
