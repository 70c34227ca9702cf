package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RequestLogger registra cada request con método, ruta, status, latencia y request_id.
// Corre dentro de ErrorMapping, así que para requests con error el status se deriva del error.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status, _, _ = classifyError(err)
		}
		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
