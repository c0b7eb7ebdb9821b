package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/artem13815/workvibe/api/http"
	"github.com/artem13815/workvibe/api/http/handlers"
	"github.com/artem13815/workvibe/pkg/conversation"
	"github.com/artem13815/workvibe/pkg/health"
	"github.com/artem13815/workvibe/pkg/health/checkers"
	"github.com/artem13815/workvibe/pkg/repository/memory"
	"github.com/artem13815/workvibe/pkg/security/jwt"
)

const (
	secret = "test-secret"
	issuer = "workvibe"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	exporter, err := conversation.NewFileExporter(dir, "/cards")
	require.NoError(t, err)
	uc := conversation.NewService(memory.NewHistoryRepository(), memory.NewCardsRepository(), exporter, conversation.Options{}, nil)

	app := fiber.New()
	apihttp.Register(app,
		handlers.NewChatHandler(uc, nil),
		handlers.NewCardsHandler(uc, nil),
		handlers.NewHealthHandler(health.NewService(checkers.NewDirChecker(dir)), nil),
		jwt.NewAuthMiddleware(secret, issuer, jwt.ScopeCardsWrite),
		dir,
	)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func token(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewGenerator(secret, issuer, time.Hour).Generate("tests", jwt.ScopeCardsWrite)
	require.NoError(t, err)
	return tok
}

func TestChat(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name      string
		body      string
		wantReply string
	}{
		{"plain", `{"message":"хочу быть фронтендером"}`, "Вайб принят: «хочу быть фронтендером». Собираем рабочее настроение."},
		{"empty body", ``, "Вайб принят: «». Собираем рабочее настроение."},
		{"missing message", `{}`, "Вайб принят: «». Собираем рабочее настроение."},
		{"number message", `{"message":42}`, "Вайб принят: «42». Собираем рабочее настроение."},
		{"preview is cut", `{"message":"` + strings.Repeat("я", 200) + `"}`, "Вайб принят: «" + strings.Repeat("я", 140) + "». Собираем рабочее настроение."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, postJSON("/api/chat", tt.body))
			require.Equal(t, http.StatusOK, status)
			var out map[string]string
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tt.wantReply, out["reply"])
			assert.NotEmpty(t, out["conversation_id"])
		})
	}
}

func TestChatKeepsConversationID(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, postJSON("/api/chat", `{"message":"hi","conversation_id":"abc","history":[]}`))
	require.Equal(t, http.StatusOK, status)
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "abc", out["conversation_id"])
}

func TestChatBadJSON(t *testing.T) {
	app := newTestApp(t)
	for _, body := range []string{`{"message":`, `[1,2]`, `null`} {
		status, raw := do(t, app, postJSON("/api/chat", body))
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.JSONEq(t, `{"error":"Bad JSON"}`, string(raw), body)
	}
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
}

func TestCardsRoundTrip(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/api/conversation/c-1/cards", nil))
	assert.Equal(t, http.StatusNotFound, status)

	payload := `{"profession":"Бариста","tech_stack":["Эспрессо-машина"]}`

	status, _ = do(t, app, postJSON("/api/conversation/c-1/cards", payload))
	assert.Equal(t, http.StatusUnauthorized, status)

	req := postJSON("/api/conversation/c-1/cards", payload)
	req.Header.Set("Authorization", "Bearer "+token(t))
	status, body := do(t, app, req)
	require.Equal(t, http.StatusCreated, status, string(body))

	var created struct {
		File string `json:"file"`
		Data struct {
			Profession string `json:"profession"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "/cards/c-1.json", created.File)
	assert.Equal(t, "Бариста", created.Data.Profession)

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/conversation/c-1/cards", nil))
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "Бариста")

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/cards/c-1.json", nil))
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "Эспрессо-машина")
}

func TestCardsRejectsInvalidPayload(t *testing.T) {
	app := newTestApp(t)
	tests := []struct {
		name string
		body string
	}{
		{"schema violation", `{"profession":5}`},
		{"no profession", `{"tech_stack":["Go"]}`},
		{"not json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := postJSON("/api/conversation/c-2/cards", tt.body)
			req.Header.Set("Authorization", token(t))
			status, _ := do(t, app, req)
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	status, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, status)
	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ready"}`, string(body))
}
