// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
	"github.com/projectly/meeting-service/internal/logging"
	"github.com/projectly/meeting-service/pkg/constants"
)

// allowedAudioExtensions maps accepted upload extensions to whether the
// file must be transcoded to the canonical codec before storage.
var allowedAudioExtensions = map[string]bool{
	".mp3":  false,
	".wav":  false,
	".m4a":  false,
	".ogg":  true,
	".webm": true,
}

// AudioService validates, transcodes, and stores meeting audio files, and
// keeps meeting rows consistent with what object storage actually holds.
type AudioService struct {
	uow        domain.UnitOfWork
	storage    domain.ObjectStorage
	transcoder domain.AudioTranscoder
	guard      *PrivilegeGuard
	ai         *AIService
}

// NewAudioService creates a new AudioService.
func NewAudioService(
	uow domain.UnitOfWork,
	storage domain.ObjectStorage,
	transcoder domain.AudioTranscoder,
	guard *PrivilegeGuard,
	ai *AIService,
) *AudioService {
	return &AudioService{
		uow:        uow,
		storage:    storage,
		transcoder: transcoder,
		guard:      guard,
		ai:         ai,
	}
}

// UploadAudio attaches an audio recording to an existing meeting. The file
// is validated and transcoded before anything is written; the object is
// uploaded first and deleted again if the database update does not commit.
// A successful upload resets any prior AI processing state, completes an
// in-person meeting that is still in progress, and submits the new audio
// for processing.
func (s *AudioService) UploadAudio(
	ctx context.Context,
	actorID, meetingID uuid.UUID,
	file *models.AudioFile,
) (*models.Meeting, error) {
	repos := s.uow.Repos()

	meeting, err := repos.Meetings.Get(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
		models.AspectMeetings, models.PrivilegeLevelWrite, &meeting.CreatorID); err != nil {
		return nil, err
	}

	if meeting.Type == models.MeetingTypeOnline {
		return nil, domain.NewValidationError("Cannot upload audio for online meetings")
	}

	prepared, err := s.prepare(ctx, file)
	if err != nil {
		return nil, err
	}

	key := audioObjectKey(meetingID, prepared.Name)
	url, err := s.storage.Upload(ctx, key, bytes.NewReader(prepared.Content), prepared.ContentType)
	if err != nil {
		return nil, domain.NewUnavailableError("Failed to store audio file", err)
	}

	uploadedAt := time.Now().UTC()
	err = s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		meeting, err = repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		meeting.SetAudio(url, models.AudioSourceUpload, uploadedAt)
		if meeting.Status == models.MeetingStatusInProgress {
			if err := meeting.Complete(); err != nil {
				return err
			}
		}
		return repos.Meetings.Update(ctx, meeting)
	})
	if err != nil {
		// Compensate the already-stored object so storage does not drift
		// from the database.
		if delErr := s.storage.Delete(ctx, url); delErr != nil {
			slog.ErrorContext(ctx, "failed to delete orphaned audio object",
				logging.ErrKey, delErr,
				logging.PriorityCritical(),
				"object_url", url,
			)
		}
		return nil, err
	}

	// Every upload re-arms the pipeline, so the fresh audio goes straight
	// out for processing once the row is committed.
	if meeting.EligibleForAISubmission() {
		if err := s.ai.Submit(ctx, meeting.ID); err != nil {
			slog.ErrorContext(ctx, "failed to submit uploaded audio for AI processing",
				logging.ErrKey, err,
				"meeting_id", meeting.ID,
			)
		}
	}

	return meeting, nil
}

// IngestForCreate validates, transcodes, and stores audio supplied at
// meeting creation time, and stamps the meeting row with the result. The
// returned cleanup deletes the stored object and must be invoked by the
// caller when the surrounding transaction fails.
func (s *AudioService) IngestForCreate(
	ctx context.Context,
	meeting *models.Meeting,
	file *models.AudioFile,
) (cleanup func(context.Context), err error) {
	prepared, err := s.prepare(ctx, file)
	if err != nil {
		return nil, err
	}

	key := audioObjectKey(meeting.ID, prepared.Name)
	url, err := s.storage.Upload(ctx, key, bytes.NewReader(prepared.Content), prepared.ContentType)
	if err != nil {
		return nil, domain.NewUnavailableError("Failed to store audio file", err)
	}

	meeting.SetAudio(url, models.AudioSourceUpload, time.Now().UTC())

	return func(ctx context.Context) {
		if delErr := s.storage.Delete(ctx, url); delErr != nil {
			slog.ErrorContext(ctx, "failed to delete orphaned audio object",
				logging.ErrKey, delErr,
				logging.PriorityCritical(),
				"object_url", url,
			)
		}
	}, nil
}

// PlaybackURL returns a short-lived link to the meeting's stored audio.
func (s *AudioService) PlaybackURL(ctx context.Context, actorID, meetingID uuid.UUID) (string, error) {
	repos := s.uow.Repos()

	meeting, err := repos.Meetings.Get(ctx, meetingID)
	if err != nil {
		return "", err
	}

	if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
		models.AspectMeetings, models.PrivilegeLevelRead, &meeting.CreatorID); err != nil {
		return "", err
	}

	if meeting.AudioStatus != models.AudioStatusAvailable || meeting.AudioURL == nil {
		return "", domain.NewNotFoundError("Meeting has no audio recording")
	}

	url, err := s.storage.PresignedURL(ctx, *meeting.AudioURL, constants.AudioPresignTTL)
	if err != nil {
		return "", domain.NewUnavailableError("Failed to generate playback URL", err)
	}
	return url, nil
}

// prepare runs the validation and transcoding steps, returning the file as
// it should be stored.
func (s *AudioService) prepare(ctx context.Context, file *models.AudioFile) (*models.AudioFile, error) {
	if file == nil || len(file.Content) == 0 {
		return nil, domain.NewFieldValidationError(models.FieldErr("audio", "Audio file is required"))
	}
	if file.Size > constants.MaxAudioFileSize {
		return nil, domain.NewFieldValidationError(models.FieldErr("audio",
			fmt.Sprintf("Audio file exceeds the %d MiB limit", constants.MaxAudioFileSize>>20)))
	}

	ext := strings.ToLower(filepath.Ext(file.Name))
	needsTranscode, ok := allowedAudioExtensions[ext]
	if !ok {
		return nil, domain.NewFieldValidationError(models.FieldErr("audio",
			fmt.Sprintf("Unsupported audio format %q", ext)))
	}

	if !needsTranscode {
		return file, nil
	}

	transcoded, err := s.transcoder.TranscodeToMP3(ctx, file.Content)
	if err != nil {
		return nil, domain.NewInternalError("Failed to transcode audio file", err)
	}
	return &models.AudioFile{
		Name:        strings.TrimSuffix(file.Name, ext) + ".mp3",
		ContentType: "audio/mpeg",
		Size:        int64(len(transcoded)),
		Content:     transcoded,
	}, nil
}

func audioObjectKey(meetingID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("meetings/%s/audio_%d%s", meetingID, time.Now().UnixNano(), ext)
}
