package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// contextWithDeadline bounds an external-service call to the given duration on
// top of the request context.
func contextWithDeadline(c *fiber.Ctx, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), d)
}
