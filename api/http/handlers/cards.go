package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/workvibe/api/http/presenter"
	"github.com/artem13815/workvibe/pkg/career"
	"github.com/artem13815/workvibe/pkg/conversation"
	"github.com/artem13815/workvibe/pkg/logger"
)

type CardsHandler struct {
	uc       conversation.UseCase
	log      *logger.Logger
	validate *validator.Validate
}

func NewCardsHandler(uc conversation.UseCase, log *logger.Logger) *CardsHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CardsHandler{uc: uc, log: log, validate: validator.New()}
}

func (h *CardsHandler) conversationID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if err := h.validate.Var(id, "required,max=128,printascii"); err != nil {
		return "", false
	}
	return id, true
}

// @Summary Карточки беседы
// @Description Последний сохранённый payload профессии и ссылка на файл экспорта.
// @Tags    Карточки
// @Produce json
// @Param   id path string true "ID беседы"
// @Success 200 {object} conversation.CardsLookup
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/conversation/{id}/cards [get]
func (h *CardsHandler) Get(c *fiber.Ctx) error {
	id, ok := h.conversationID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "некорректный id беседы")
	}
	out, err := h.uc.Cards(c.UserContext(), id)
	if errors.Is(err, conversation.ErrNotFound) {
		return presenter.Error(c, http.StatusNotFound, "карточки не найдены")
	}
	if err != nil {
		h.log.Error("cards: lookup failed", "conversation_id", id, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// @Summary Сохранить карточки беседы
// @Description Принимает payload профессии, проверяет его по JSON-схеме, сохраняет и экспортирует в файл.
// @Tags    Карточки
// @Accept  json
// @Produce json
// @Param   id path string true "ID беседы"
// @Param   input body career.Payload true "Payload профессии"
// @Security BearerAuth
// @Success 201 {object} conversation.CardsLookup
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /api/conversation/{id}/cards [post]
func (h *CardsHandler) Create(c *fiber.Ctx) error {
	id, ok := h.conversationID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "некорректный id беседы")
	}
	p, err := career.DecodePayload(c.Body())
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	out, err := h.uc.SaveCards(c.UserContext(), id, *p)
	if errors.Is(err, conversation.ErrNoProfession) {
		return presenter.Error(c, http.StatusBadRequest, "поле profession обязательно")
	}
	if err != nil {
		h.log.Error("cards: save failed", "conversation_id", id, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
	subject, _ := c.Locals("subject").(string)
	h.log.Info("cards stored", "conversation_id", id, "subject", subject, "profession", p.Profession)
	return presenter.JSON(c, http.StatusCreated, out)
}
