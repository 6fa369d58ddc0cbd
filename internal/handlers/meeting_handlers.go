// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package handlers exposes the meeting service over HTTP.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
	"github.com/projectly/meeting-service/internal/service"
)

// MeetingHandler handles meeting lifecycle endpoints.
type MeetingHandler struct {
	meetings *service.MeetingService
	audio    *service.AudioService
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(meetings *service.MeetingService, audio *service.AudioService) *MeetingHandler {
	return &MeetingHandler{
		meetings: meetings,
		audio:    audio,
	}
}

// RegisterRoutes attaches the meeting endpoints to the router.
func (h *MeetingHandler) RegisterRoutes(router fiber.Router) {
	meetings := router.Group("/meetings", ActorMiddleware())

	meetings.Post("/", h.CreateMeeting)
	meetings.Get("/:id", h.GetMeeting)
	meetings.Put("/:id", h.UpdateMeeting)
	meetings.Post("/:id/start", h.StartMeeting)
	meetings.Post("/:id/complete", h.CompleteMeeting)
	meetings.Post("/:id/cancel", h.CancelMeeting)
	meetings.Patch("/:id/recurrence", h.ModifyRecurringMeeting)
	meetings.Post("/:id/attendance", h.ConfirmAttendance)
	meetings.Get("/:id/occurrences", h.ListOccurrences)
	meetings.Post("/:id/audio", h.UploadAudio)
	meetings.Get("/:id/audio", h.GetAudioURL)
}

// CreateMeeting schedules a new meeting. The body is either plain JSON or,
// for Done-type meetings carrying an audio file, a multipart form with a
// "meeting" JSON field and an "audio" file field.
func (h *MeetingHandler) CreateMeeting(c *fiber.Ctx) error {
	var req models.CreateMeetingRequest

	contentType := c.Get(fiber.HeaderContentType)
	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		if err := json.Unmarshal([]byte(c.FormValue("meeting")), &req); err != nil {
			return writeError(c, domain.NewValidationError("invalid meeting payload", err))
		}
		fileHeader, err := c.FormFile("audio")
		if err == nil {
			audioFile, err := readAudioFile(fileHeader)
			if err != nil {
				return writeError(c, err)
			}
			req.Audio = audioFile
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, domain.NewValidationError("invalid request body", err))
		}
	}

	meeting, err := h.meetings.CreateMeeting(c.UserContext(), actorID(c), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(meeting)
}

// GetMeeting returns a single meeting with its members.
func (h *MeetingHandler) GetMeeting(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	meeting, err := h.meetings.GetMeeting(c.UserContext(), actorID(c), meetingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(meeting)
}

// UpdateMeeting mutates a scheduled meeting.
func (h *MeetingHandler) UpdateMeeting(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.UpdateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.NewValidationError("invalid request body", err))
	}

	meeting, err := h.meetings.UpdateMeeting(c.UserContext(), actorID(c), meetingID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(meeting)
}

// StartMeeting moves a meeting into progress. For online meetings the
// response includes a video room join token.
func (h *MeetingHandler) StartMeeting(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	result, err := h.meetings.StartMeeting(c.UserContext(), actorID(c), meetingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}

// CompleteMeeting finishes a meeting in progress.
func (h *MeetingHandler) CompleteMeeting(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	meeting, err := h.meetings.CompleteMeeting(c.UserContext(), actorID(c), meetingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(meeting)
}

// CancelMeeting cancels a meeting that has not finished.
func (h *MeetingHandler) CancelMeeting(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	meeting, err := h.meetings.CancelMeeting(c.UserContext(), actorID(c), meetingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(meeting)
}

// ModifyRecurringMeeting edits or cancels a recurring series.
func (h *MeetingHandler) ModifyRecurringMeeting(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.ModifyRecurringRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, domain.NewValidationError("invalid request body", err))
	}

	meeting, err := h.meetings.ModifyRecurringMeeting(c.UserContext(), actorID(c), meetingID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(meeting)
}

// ConfirmAttendance marks the calling member as attending.
func (h *MeetingHandler) ConfirmAttendance(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.meetings.ConfirmAttendance(c.UserContext(), actorID(c), meetingID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type occurrencesResponse struct {
	Occurrences []time.Time `json:"occurrences"`
}

// ListOccurrences returns the upcoming occurrence times of a meeting or its
// recurring series.
func (h *MeetingHandler) ListOccurrences(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	limit := c.QueryInt("limit")
	times, err := h.meetings.ListOccurrences(c.UserContext(), actorID(c), meetingID, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(occurrencesResponse{Occurrences: times})
}

// UploadAudio attaches a recording to an in-person or done meeting.
func (h *MeetingHandler) UploadAudio(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return writeError(c, domain.NewFieldValidationError(models.FieldErr("audio", "audio file is required")))
	}

	audioFile, err := readAudioFile(fileHeader)
	if err != nil {
		return writeError(c, err)
	}

	meeting, err := h.audio.UploadAudio(c.UserContext(), actorID(c), meetingID, audioFile)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(meeting)
}

type audioURLResponse struct {
	URL string `json:"url"`
}

// GetAudioURL returns a time-limited playback URL for the meeting audio.
func (h *MeetingHandler) GetAudioURL(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return writeError(c, err)
	}

	url, err := h.audio.PlaybackURL(c.UserContext(), actorID(c), meetingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(audioURLResponse{URL: url})
}

func parseMeetingID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("invalid meeting ID", err)
	}
	return id, nil
}

func readAudioFile(header *multipart.FileHeader) (*models.AudioFile, error) {
	file, err := header.Open()
	if err != nil {
		return nil, domain.NewValidationError("could not read audio file", err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("reading audio upload %q", header.Filename), err)
	}

	return &models.AudioFile{
		Name:        header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        int64(len(content)),
		Content:     content,
	}, nil
}
