package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/workvibe/api/http/presenter"
	"github.com/artem13815/workvibe/pkg/conversation"
	"github.com/artem13815/workvibe/pkg/logger"
)

type ChatHandler struct {
	uc  conversation.UseCase
	log *logger.Logger
}

func NewChatHandler(uc conversation.UseCase, log *logger.Logger) *ChatHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ChatHandler{uc: uc, log: log}
}

// chatRequest описывает тело запроса для swagger; разбор идёт вручную, см. parseChatRequest.
type chatRequest struct {
	Message        string        `json:"message"`
	ConversationID *string       `json:"conversation_id"`
	History        []historyItem `json:"history,omitempty"`
}

type historyItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// @Summary     Отправить реплику
// @Description Заглушка чат-бэкенда: через короткую паузу возвращает подтверждение с началом сообщения.
// @Tags        Чат
// @Accept      json
// @Produce     json
// @Param       input body chatRequest true "Сообщение"
// @Success     200 {object} conversation.ChatOutput
// @Failure     400 {object} presenter.LegacyError
// @Router      /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	in, err := parseChatRequest(c.Body())
	if err != nil {
		h.log.Debug("chat: bad request body", "error", err)
		return presenter.Legacy(c, http.StatusBadRequest, "Bad JSON")
	}
	out, err := h.uc.Reply(c.UserContext(), in)
	if err != nil {
		h.log.Error("chat: reply failed", "conversation_id", in.ConversationID, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// parseChatRequest accepts an empty body, a missing message and non-string
// messages (kept as raw JSON text).
func parseChatRequest(body []byte) (conversation.ChatInput, error) {
	var in conversation.ChatInput
	if len(bytes.TrimSpace(body)) == 0 {
		return in, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return in, err
	}
	if raw == nil {
		return in, errors.New("body is not an object")
	}
	in.Message = rawText(raw["message"])
	if v, ok := raw["conversation_id"]; ok {
		var id string
		if json.Unmarshal(v, &id) == nil {
			in.ConversationID = id
		}
	}
	return in, nil
}

func rawText(v json.RawMessage) string {
	if len(v) == 0 || string(v) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}
