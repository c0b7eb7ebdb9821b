package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Post("/protected", NewAuthMiddleware("secret", "workvibe", ScopeCardsWrite), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("subject").(string))
	})
	return app
}

func call(t *testing.T, app *fiber.App, header string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestGenerateRejectsEmptySubject(t *testing.T) {
	_, err := NewGenerator("secret", "workvibe", time.Hour).Generate("")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	app := newApp()
	valid, err := NewGenerator("secret", "workvibe", time.Hour).Generate("pipeline", ScopeCardsWrite)
	require.NoError(t, err)
	noScope, err := NewGenerator("secret", "workvibe", time.Hour).Generate("pipeline")
	require.NoError(t, err)
	otherIssuer, err := NewGenerator("secret", "someone", time.Hour).Generate("pipeline", ScopeCardsWrite)
	require.NoError(t, err)
	otherSecret, err := NewGenerator("other", "workvibe", time.Hour).Generate("pipeline", ScopeCardsWrite)
	require.NoError(t, err)
	expired, err := NewGenerator("secret", "workvibe", -time.Minute).Generate("pipeline", ScopeCardsWrite)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"bearer", "Bearer " + valid, http.StatusOK},
		{"bare token", valid, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + otherSecret, http.StatusUnauthorized},
		{"wrong issuer", "Bearer " + otherIssuer, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"no scope", "Bearer " + noScope, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, call(t, app, tt.header))
		})
	}
}
