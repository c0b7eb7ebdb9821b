package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/workvibe/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// cardsDir is served read-only under /cards.
func Register(app *fiber.App, chat *handlers.ChatHandler, cards *handlers.CardsHandler, health *handlers.HealthHandler, authMW fiber.Handler, cardsDir string) {
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST, OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")
	api.Post("/chat", chat.Chat)

	conv := api.Group("/conversation/:id")
	conv.Get("/cards", cards.Get)
	conv.Post("/cards", authMW, cards.Create)

	if cardsDir != "" {
		app.Static("/cards", cardsDir)
	}

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)
}
