package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/dto"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
	"github.com/meetingscribe/api/internal/pkg/serverutils"
	"github.com/meetingscribe/api/internal/service"
)

type IMeetingController interface {
	RegisterRoutes(r fiber.Router)
}

type meetingController struct {
	meetings *service.MeetingService
	ingest   *service.MeetingIngest
}

func NewMeetingController(meetings *service.MeetingService, ingest *service.MeetingIngest) IMeetingController {
	return &meetingController{meetings: meetings, ingest: ingest}
}

func (c *meetingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/meetings", serverutils.JwtMiddleware)
	h.Post("/upload", c.Upload)
	h.Post("/extract", c.Extract)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("/:id", c.Get)
	h.Patch("/:id/transcript", c.UpdateTranscript)
	h.Patch("/:id/extraction", c.UpdateExtraction)
	h.Delete("/:id", c.Delete)
	h.Get("/:id/insights", c.Insights)
	h.Get("/:id/whatchanged", c.WhatChanged)
	h.Post("/:id/send-follow-up", c.SendFollowUp)

	r.Post("/zoom/import", serverutils.JwtMiddleware, c.ImportCloudRecording)
}

func (c *meetingController) meetingID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("invalid meeting id")
	}
	return id, nil
}

func (c *meetingController) Upload(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		return apperrors.NewValidationError("audio file is required")
	}
	title := ctx.FormValue("title")

	result, err := c.ingest.UploadFile(ctx.Context(), ownerId, title, fileHeader)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{
		"id":         result.MeetingId,
		"title":      result.Title,
		"transcript": result.Transcript,
	})
}

type extractRequest struct {
	Notes string `json:"notes" validate:"required"`
}

func (c *meetingController) Extract(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	var req extractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	record, err := c.meetings.Extract(ctx.Context(), ownerId, req.Notes)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, record)
}

type createMeetingRequest struct {
	Title       string                  `json:"title"`
	RawNotes    string                  `json:"raw_notes"`
	ActionItems entity.ExtractionRecord `json:"action_items"`
}

func (c *meetingController) Create(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	var req createMeetingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	meeting, err := c.meetings.Create(ctx.Context(), ownerId, req.Title, req.RawNotes, req.ActionItems)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, fiber.Map{"id": meeting.Id})
}

func (c *meetingController) List(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	meetings, err := c.meetings.List(ctx.Context(), ownerId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, dto.NewMeetingResponses(meetings))
}

func (c *meetingController) Get(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	meetingId, err := c.meetingID(ctx)
	if err != nil {
		return err
	}
	meeting, err := c.meetings.Get(ctx.Context(), ownerId, meetingId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, dto.NewMeetingResponse(meeting))
}

type updateTranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

func (c *meetingController) UpdateTranscript(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	meetingId, err := c.meetingID(ctx)
	if err != nil {
		return err
	}
	var req updateTranscriptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := c.meetings.UpdateTranscript(ctx.Context(), ownerId, meetingId, req.Transcript); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{"ok": true})
}

func (c *meetingController) UpdateExtraction(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	meetingId, err := c.meetingID(ctx)
	if err != nil {
		return err
	}
	var req entity.ExtractionRecord
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := c.meetings.UpdateExtraction(ctx.Context(), ownerId, meetingId, req); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{"ok": true})
}

func (c *meetingController) Delete(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	meetingId, err := c.meetingID(ctx)
	if err != nil {
		return err
	}
	if err := c.meetings.Delete(ctx.Context(), ownerId, meetingId); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{"ok": true})
}

func (c *meetingController) Insights(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	meetingId, err := c.meetingID(ctx)
	if err != nil {
		return err
	}
	cards, err := c.meetings.Insights(ctx.Context(), ownerId, meetingId)
	if err != nil {
		return err
	}
	resp := fiber.Map{"meeting_id": meetingId, "insights": cards}
	if len(cards) == 0 {
		resp["message"] = "No insights are available for this meeting yet."
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, resp)
}

func (c *meetingController) WhatChanged(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	meetingId, err := c.meetingID(ctx)
	if err != nil {
		return err
	}
	result, err := c.meetings.WhatChanged(ctx.Context(), ownerId, meetingId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, result)
}

func (c *meetingController) SendFollowUp(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	meetingId, err := c.meetingID(ctx)
	if err != nil {
		return err
	}
	if err := c.meetings.SendFollowUp(ctx.Context(), ownerId, meetingId); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{"ok": true})
}

// importCloudRecordingRequest's StartTime is accepted for wire-contract
// completeness but not persisted: MeetingIngest timestamps the meeting
// from the import transaction itself (CreatedAt), not the source
// recording's start time.
type importCloudRecordingRequest struct {
	MeetingId   string     `json:"meeting_id" validate:"required"`
	RecordingId string     `json:"recording_id" validate:"required"`
	Topic       string     `json:"topic"`
	StartTime   *time.Time `json:"start_time"`
}

func (c *meetingController) ImportCloudRecording(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	var req importCloudRecordingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	result, err := c.ingest.ImportCloudRecording(ctx.Context(), ownerId, req.MeetingId, req.RecordingId, req.Topic)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{
		"id":         result.MeetingId,
		"title":      result.Title,
		"transcript": result.Transcript,
	})
}
