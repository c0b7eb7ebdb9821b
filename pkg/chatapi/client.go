package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrStatus wraps any non-2xx response.
var ErrStatus = errors.New("unexpected status")

// HistoryItem — реплика истории в формате, который ждёт бэкенд.
type HistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message        string        `json:"message"`
	ConversationID *string       `json:"conversation_id"`
	History        []HistoryItem `json:"history,omitempty"`
}

type ChatResponse struct {
	Reply          string          `json:"reply"`
	ConversationID string          `json:"conversation_id"`
	StructuredData json.RawMessage `json:"structured_data,omitempty"`
	CardsFile      string          `json:"cards_file,omitempty"`
}

// CardsLookup — ответ GET /api/conversation/{id}/cards.
type CardsLookup struct {
	File string          `json:"file,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Client — клиент чат-бэкенда. Таймаутов нет: время жизни запроса задаёт ctx.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpDo = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chat posts one user message.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return ChatResponse{}, err
	}
	var out ChatResponse
	if err := c.do(ctx, http.MethodPost, c.BaseURL+"/api/chat", data, &out); err != nil {
		return ChatResponse{}, fmt.Errorf("chat: %w", err)
	}
	return out, nil
}

// ConversationCards asks the backend for cards stored under a conversation.
func (c *Client) ConversationCards(ctx context.Context, conversationID string) (CardsLookup, error) {
	endpoint := fmt.Sprintf("%s/api/conversation/%s/cards", c.BaseURL, url.PathEscape(conversationID))
	var out CardsLookup
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return CardsLookup{}, fmt.Errorf("conversation cards: %w", err)
	}
	return out, nil
}

// FetchJSON downloads a JSON document; relative refs resolve against BaseURL.
func (c *Client) FetchJSON(ctx context.Context, ref string, out any) error {
	if err := c.do(ctx, http.MethodGet, c.ResolveURL(ref), nil, out); err != nil {
		return fmt.Errorf("fetch %s: %w", ref, err)
	}
	return nil
}

// ResolveURL makes ref absolute.
func (c *Client) ResolveURL(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return ref
	}
	base, err := url.Parse(c.BaseURL + "/")
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
