package auth_test

import (
	"testing"

	"github.com/Elias-Manica/My-wallet-back/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUp(t *testing.T) {
	ta := testutils.NewTestApp(t)

	tests := []struct {
		desc       string
		body       fiber.Map
		wantStatus int
	}{
		{
			desc:       "valid sign-up",
			body:       fiber.Map{"name": "Ana", "email": "ana@example.com", "password": "s3cret"},
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "duplicate email",
			body:       fiber.Map{"name": "Ana Clone", "email": "ana@example.com", "password": "other"},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			desc:       "malformed email",
			body:       fiber.Map{"name": "Bob", "email": "not-an-email", "password": "s3cret"},
			wantStatus: fiber.StatusUnprocessableEntity,
		},
		{
			desc:       "empty name",
			body:       fiber.Map{"name": "", "email": "bob@example.com", "password": "s3cret"},
			wantStatus: fiber.StatusUnprocessableEntity,
		},
		{
			desc:       "empty password",
			body:       fiber.Map{"name": "Bob", "email": "bob@example.com", "password": ""},
			wantStatus: fiber.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			resp := ta.Request(t, fiber.MethodPost, "/sign-up", tt.body, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestSignUp_ValidationMessages(t *testing.T) {
	ta := testutils.NewTestApp(t)

	resp := ta.Request(t, fiber.MethodPost, "/sign-up", fiber.Map{
		"name":     "",
		"email":    "nope",
		"password": "",
	}, "")
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var msgs []string
	testutils.DecodeJSON(t, resp, &msgs)
	assert.Contains(t, msgs, "name must not be empty")
	assert.Contains(t, msgs, "email must be a valid email address")
	assert.Contains(t, msgs, "password must not be empty")
}

func TestLogin(t *testing.T) {
	ta := testutils.NewTestApp(t)
	resp := ta.Request(t, fiber.MethodPost, "/sign-up", fiber.Map{
		"name": "Ana", "email": "ana@example.com", "password": "s3cret",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	t.Run("valid credentials", func(t *testing.T) {
		resp := ta.Request(t, fiber.MethodPost, "/login", fiber.Map{
			"email": "ana@example.com", "password": "s3cret",
		}, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body struct {
			Email string `json:"email"`
			Token string `json:"token"`
		}
		testutils.DecodeJSON(t, resp, &body)
		assert.Equal(t, "ana@example.com", body.Email)
		assert.NotEmpty(t, body.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := ta.Request(t, fiber.MethodPost, "/login", fiber.Map{
			"email": "ana@example.com", "password": "wrong",
		}, "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := ta.Request(t, fiber.MethodPost, "/login", fiber.Map{
			"email": "ghost@example.com", "password": "s3cret",
		}, "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("missing password", func(t *testing.T) {
		resp := ta.Request(t, fiber.MethodPost, "/login", fiber.Map{
			"email": "ana@example.com",
		}, "")
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestLogin_RotatesToken(t *testing.T) {
	ta := testutils.NewTestApp(t)
	first := ta.SignUpAndLogin(t, "Ana", "ana@example.com", "s3cret")

	resp := ta.Request(t, fiber.MethodPost, "/login", fiber.Map{
		"email": "ana@example.com", "password": "s3cret",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	testutils.DecodeJSON(t, resp, &body)
	require.NotEqual(t, first, body.Token)

	// The old token no longer reaches protected routes.
	resp = ta.Request(t, fiber.MethodGet, "/balance", nil, first)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = ta.Request(t, fiber.MethodGet, "/balance", nil, body.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSignOut(t *testing.T) {
	ta := testutils.NewTestApp(t)
	token := ta.SignUpAndLogin(t, "Ana", "ana@example.com", "s3cret")

	t.Run("missing token", func(t *testing.T) {
		resp := ta.Request(t, fiber.MethodPost, "/sign-out", nil, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown token", func(t *testing.T) {
		resp := ta.Request(t, fiber.MethodPost, "/sign-out", nil, "no-such-token")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		resp := ta.Request(t, fiber.MethodPost, "/sign-out", nil, token)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		// The session is gone; a second sign-out fails.
		resp = ta.Request(t, fiber.MethodPost, "/sign-out", nil, token)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
