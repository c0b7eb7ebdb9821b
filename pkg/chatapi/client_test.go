package chatapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"reply":"ok","conversation_id":"c1","structured_data":{"profession":"Test"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	out, err := c.Chat(context.Background(), ChatRequest{Message: "привет", History: []HistoryItem{{Role: "user", Content: "привет"}}})
	require.NoError(t, err)

	assert.Equal(t, "ok", out.Reply)
	assert.Equal(t, "c1", out.ConversationID)
	assert.JSONEq(t, `{"profession":"Test"}`, string(out.StructuredData))

	assert.Equal(t, "привет", got["message"])
	assert.Nil(t, got["conversation_id"], "missing id is sent as null")
	assert.Len(t, got["history"], 1)
}

func TestChatErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  bool
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) }, true},
		{"bad request", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Bad JSON"}`))
		}, true},
		{"not json", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("<html>")) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := New(srv.URL).Chat(context.Background(), ChatRequest{Message: "x"})
			require.Error(t, err)
			assert.Equal(t, tt.status, errors.Is(err, ErrStatus))
		})
	}
}

func TestChatTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := New(srv.URL).Chat(context.Background(), ChatRequest{Message: "x"})
	assert.Error(t, err)
}

func TestConversationCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/conversation/a%20b/cards", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"file":"/cards/a_b.json","data":{"profession":"X"}}`))
	}))
	defer srv.Close()

	out, err := New(srv.URL).ConversationCards(context.Background(), "a b")
	require.NoError(t, err)
	assert.Equal(t, "/cards/a_b.json", out.File)
	assert.JSONEq(t, `{"profession":"X"}`, string(out.Data))
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/c1.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"profession":"Y"}`))
	}))
	defer srv.Close()

	var out map[string]string
	require.NoError(t, New(srv.URL).FetchJSON(context.Background(), "/cards/c1.json", &out))
	assert.Equal(t, "Y", out["profession"])

	require.NoError(t, New("http://unused.invalid").FetchJSON(context.Background(), srv.URL+"/cards/c1.json", &out))
}

func TestResolveURL(t *testing.T) {
	c := New("http://127.0.0.1:8000")
	assert.Equal(t, "http://127.0.0.1:8000/cards/x.json", c.ResolveURL("/cards/x.json"))
	assert.Equal(t, "http://127.0.0.1:8000/cards/x.json", c.ResolveURL("cards/x.json"))
	assert.Equal(t, "https://cdn.example.com/x.json", c.ResolveURL("https://cdn.example.com/x.json"))
}
