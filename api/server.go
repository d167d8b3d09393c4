package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inference-sim/cpusched/config"
)

// NewApp builds the fiber application with every route registered.
func NewApp(cfg *config.ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpusched",
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	handler := NewSchedulerHandlerImpl(cfg)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.Algorithms)
		v1.Post("/schedule/:algorithm", handler.Schedule)
		v1.Post("/compare", handler.Compare)
	}
	return app
}
