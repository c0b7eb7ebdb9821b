package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/workvibe/api/http/presenter"
	"github.com/artem13815/workvibe/pkg/health"
	"github.com/artem13815/workvibe/pkg/logger"
)

const readyTimeout = 2 * time.Second

// HealthHandler — пробы liveness/readiness для оркестратора и vibechat.
type HealthHandler struct {
	svc health.ReadinessUseCase
	log *logger.Logger
}

func NewHealthHandler(svc health.ReadinessUseCase, log *logger.Logger) *HealthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &HealthHandler{svc: svc, log: log}
}

type probeResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} probeResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, probeResponse{Status: "ok"})
}

// Ready проверяет хранилища и каталог экспорта карточек.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} probeResponse
// @Failure 503 {object} probeResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		h.log.Warn("readiness failed", "error", err)
		return presenter.JSON(c, http.StatusServiceUnavailable, probeResponse{Status: "not_ready", Details: err.Error()})
	}
	return presenter.JSON(c, http.StatusOK, probeResponse{Status: "ready"})
}
