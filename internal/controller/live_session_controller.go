package controller

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
	"github.com/meetingscribe/api/internal/pkg/serverutils"
	"github.com/meetingscribe/api/internal/service"
)

type ILiveSessionController interface {
	RegisterRoutes(r fiber.Router)
}

type liveSessionController struct {
	manager *service.LiveSessionManager
}

func NewLiveSessionController(manager *service.LiveSessionManager) ILiveSessionController {
	return &liveSessionController{manager: manager}
}

func (c *liveSessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/live", serverutils.JwtMiddleware)
	h.Post("/start", c.Start)
	h.Get("/:id/stream", c.Stream)
	h.Post("/:id/chunk", c.Chunk)
	h.Post("/:id/stop", c.Stop)
	h.Get("/:id/status", c.Status)
	h.Post("/:id/memory-hints", c.MemoryHints)
}

type startLiveSessionRequest struct {
	Title        string `json:"title"`
	Participants string `json:"participants"`
}

func (c *liveSessionController) Start(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	var req startLiveSessionRequest
	_ = ctx.BodyParser(&req)

	session, err := c.manager.Start(ctx.Context(), ownerId, req.Title, req.Participants)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{
		"session_id": session.Id,
		"title":      session.Title,
	})
}

func (c *liveSessionController) sessionID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("invalid session id")
	}
	return id, nil
}

func (c *liveSessionController) Chunk(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	sessionId, err := c.sessionID(ctx)
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		return apperrors.NewValidationError("audio file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	defer file.Close()
	audio, err := io.ReadAll(file)
	if err != nil {
		return apperrors.NewStorageError(err)
	}

	timestampMs, _ := strconv.ParseInt(ctx.FormValue("timestamp_ms"), 10, 64)

	result, err := c.manager.Chunk(ctx.Context(), sessionId, ownerId, audio, timestampMs, fileHeader.Filename)
	if err != nil {
		return err
	}

	body := fiber.Map{"ok": result.Ok}
	if result.SegmentIndex != nil {
		body["segment_index"] = *result.SegmentIndex
	} else {
		body["segment_index"] = nil
	}
	if result.Silent {
		body["silent"] = true
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, body)
}

func (c *liveSessionController) Stop(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	sessionId, err := c.sessionID(ctx)
	if err != nil {
		return err
	}

	result, err := c.manager.Stop(ctx.Context(), sessionId, ownerId)
	if err != nil {
		return err
	}

	body := fiber.Map{"title": result.Title}
	if result.MeetingId != nil {
		body["meeting_id"] = result.MeetingId.String()
	} else {
		body["meeting_id"] = nil
	}
	if result.Message != "" {
		body["message"] = result.Message
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, body)
}

func (c *liveSessionController) Status(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	sessionId, err := c.sessionID(ctx)
	if err != nil {
		return err
	}

	result, err := c.manager.Status(ctx.Context(), sessionId, ownerId)
	if err != nil {
		return err
	}

	body := fiber.Map{
		"session_id":    result.Session.Id,
		"status":        result.Session.Status,
		"title":         result.Session.Title,
		"started_at":    result.Session.StartedAt,
		"segment_count": result.SegmentCount,
	}
	if result.Session.EndedAt != nil {
		body["ended_at"] = *result.Session.EndedAt
	}
	if result.Session.MeetingId != nil {
		body["meeting_id"] = result.Session.MeetingId.String()
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, body)
}

func (c *liveSessionController) MemoryHints(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	sessionId, err := c.sessionID(ctx)
	if err != nil {
		return err
	}

	hints, err := c.manager.MemoryHints(ctx.Context(), sessionId, ownerId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{"hints": hints})
}

// Stream is the SSE endpoint: it holds the connection open and forwards
// every PushEvent from the manager's subscriber channel as a server-push
// event, until the client disconnects or the session stops.
func (c *liveSessionController) Stream(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	sessionId, err := c.sessionID(ctx)
	if err != nil {
		return err
	}

	events, unsubscribe, err := c.manager.Subscribe(ctx.Context(), sessionId, ownerId)
	if err != nil {
		return err
	}

	ctx.Set("Content-Type", "text/event-stream")
	ctx.Set("Cache-Control", "no-cache")
	ctx.Set("Connection", "keep-alive")

	ctx.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()
		for event := range events {
			if event.Event != "" {
				fmt.Fprintf(w, "event: %s\n", event.Event)
			}
			fmt.Fprintf(w, "data: %s\n\n", serverutils.MustJSON(event.Data))
			if err := w.Flush(); err != nil {
				return
			}
			if event.Event == "stopped" {
				return
			}
		}
	})

	return nil
}
