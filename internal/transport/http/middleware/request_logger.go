// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status, sizes and duration.
// Server errors are logged at error level. Request strings are copied since fasthttp
// reuses their buffers once the handler returns.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	log = log.Named("http.access")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}

		status := c.Response().StatusCode()
		fields := []interface{}{
			"method", utils.CopyString(c.Method()),
			"path", utils.CopyString(c.OriginalURL()),
			"status", status,
			"bytes_in", len(c.Request().Body()),
			"bytes_out", len(c.Response().Body()),
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", utils.CopyString(reqID),
		}
		if status >= fiber.StatusInternalServerError {
			log.Errorw("http", fields...)
		} else {
			log.Infow("http", fields...)
		}
		return err
	}
}
