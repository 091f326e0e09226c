// Package server builds the fiber application serving the HTTP API.
package server

import (
	"users-insights/config"
	"users-insights/internal/transport/http/middleware"
	"users-insights/internal/transport/http/server/handlers-fiber"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// New returns an app with middlewares and all routes mounted.
func New(log *zap.SugaredLogger, cfg *config.Config, h *handlers_fiber.Handler) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
		BodyLimit:             cfg.HTTP.BodyLimit,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	if cfg.Metrics.Enabled {
		serv.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	handlers_fiber.RegisterHandlers(serv, h)
	return serv
}
