package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/pkg/flog"
)

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := flog.IDFromFiberCtx(c)
		if ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
