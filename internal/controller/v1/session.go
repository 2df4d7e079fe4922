package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/formsight/backend/internal/model/types"
	"github.com/formsight/backend/internal/server/svr"
	"github.com/formsight/backend/internal/service"
	"github.com/formsight/backend/internal/util/rekuest"
)

type SessionController struct {
	SessionService *service.Session
}

func RegisterSession(v1 *svr.V1, sessionService *service.Session) {
	c := &SessionController{
		SessionService: sessionService,
	}

	v1.Post("/sessions", c.Create)
	v1.Post("/sessions/:sessionId/start", c.Start)
	v1.Post("/sessions/:sessionId/frames", c.IngestFrame)
	v1.Post("/sessions/:sessionId/stop", c.Stop)
	v1.Get("/sessions/:sessionId/stats", c.Stats)
	v1.Get("/sessions/:sessionId/report", c.Report)
}

// Create opens a new analysis session for one sport and returns its
// generated identifier. The session starts in the created state and
// accepts no frames until started.
func (c *SessionController) Create(ctx *fiber.Ctx) error {
	var req types.CreateSessionRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	resp, err := c.SessionService.Create(ctx.UserContext(), req.SportID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

func (c *SessionController) Start(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")
	if err := rekuest.ValidVar(ctx, sessionID, "required,alphanum"); err != nil {
		return err
	}

	resp, err := c.SessionService.Start(ctx.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(resp)
}

// IngestFrame scores one landmark frame and returns the per-frame
// breakdown together with refreshed running stats.
func (c *SessionController) IngestFrame(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")
	if err := rekuest.ValidVar(ctx, sessionID, "required,alphanum"); err != nil {
		return err
	}

	var req types.IngestFrameRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	resp, err := c.SessionService.Ingest(ctx.UserContext(), sessionID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(resp)
}

// Stop finalizes the session and returns the full report. Idempotent:
// stopping an already-reported session returns the same report.
func (c *SessionController) Stop(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")
	if err := rekuest.ValidVar(ctx, sessionID, "required,alphanum"); err != nil {
		return err
	}

	report, err := c.SessionService.Stop(ctx.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}

func (c *SessionController) Stats(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")
	if err := rekuest.ValidVar(ctx, sessionID, "required,alphanum"); err != nil {
		return err
	}

	stats, err := c.SessionService.Stats(ctx.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(stats)
}

// Report returns the final report of a stopped session, served from
// memory when the session is still resident or from the archive after
// eviction.
func (c *SessionController) Report(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("sessionId")
	if err := rekuest.ValidVar(ctx, sessionID, "required,alphanum"); err != nil {
		return err
	}

	report, err := c.SessionService.GetReport(ctx.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}
