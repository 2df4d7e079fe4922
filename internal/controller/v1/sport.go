package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/formsight/backend/internal/server/svr"
	"github.com/formsight/backend/internal/service"
)

type SportController struct {
	SessionService *service.Session
}

func RegisterSport(v1 *svr.V1, sessionService *service.Session) {
	c := &SportController{
		SessionService: sessionService,
	}

	v1.Get("/sports", c.List)
}

func (c *SportController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(c.SessionService.ListSports(ctx.UserContext()))
}
