package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

// LegacyError — тело ошибки чат-эндпоинта, которое ждут старые клиенты.
type LegacyError struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Legacy(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, LegacyError{Error: message})
}
