package serverutils

import (
	"strconv"
	"time"

	"notekeeper-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger tags every request with a generated id and logs the outcome.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		requestId := uuid.NewString()
		ctx.Locals("request_id", requestId)

		err := ctx.Next()

		log.Info("http", "request completed", map[string]interface{}{
			"request_id":  requestId,
			"method":      ctx.Method(),
			"path":        ctx.Path(),
			"status":      ctx.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return err
	}
}

// ParseId parses a path id. Malformed or non-positive values are treated the
// same as an unknown id by callers, never as a distinct parse error.
func ParseId(param string) (uint, bool) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
