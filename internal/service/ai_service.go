// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
	"github.com/projectly/meeting-service/internal/logging"
	"github.com/projectly/meeting-service/pkg/constants"
)

// AIService drives the asynchronous transcription/summary pipeline. A
// meeting's audio is submitted once per upload; the poller advances
// submissions until they reach a terminal state.
type AIService struct {
	uow     domain.UnitOfWork
	storage domain.ObjectStorage
	client  domain.AIClient
}

// NewAIService creates a new AIService.
func NewAIService(uow domain.UnitOfWork, storage domain.ObjectStorage, client domain.AIClient) *AIService {
	return &AIService{
		uow:     uow,
		storage: storage,
		client:  client,
	}
}

// Submit hands the meeting's current audio asset to the AI service and
// moves the pipeline to OnQueue. Meetings without audio, or whose current
// audio has already been submitted, are skipped without error.
func (s *AIService) Submit(ctx context.Context, meetingID uuid.UUID) error {
	return s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		meeting, err := repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		if !meeting.EligibleForAISubmission() {
			return nil
		}

		audioURL, err := s.storage.PresignedURL(ctx, *meeting.AudioURL, constants.AudioPresignTTL)
		if err != nil {
			return domain.NewUnavailableError("Failed to generate audio access URL", err)
		}

		token, err := s.client.SubmitAudio(ctx, audioURL, meeting.Language)
		if err != nil {
			return domain.NewUnavailableError("Failed to submit audio for processing", err)
		}

		meeting.AIToken = &token
		meeting.AIStatus = models.AIProcessingStatusOnQueue
		return repos.Meetings.Update(ctx, meeting)
	})
}

// Poll advances every in-flight submission one step. Each meeting is
// handled in its own transaction so one failure does not stall the rest.
func (s *AIService) Poll(ctx context.Context) {
	meetings, err := s.uow.Repos().Meetings.ListByAIStatus(ctx, []models.AIProcessingStatus{
		models.AIProcessingStatusOnQueue,
		models.AIProcessingStatusProcessing,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to list in-flight AI submissions", logging.ErrKey, err)
		return
	}

	for _, meeting := range meetings {
		if err := s.pollOne(ctx, meeting.ID); err != nil {
			slog.ErrorContext(ctx, "failed to advance AI submission",
				logging.ErrKey, err,
				"meeting_id", meeting.ID,
			)
		}
	}
}

func (s *AIService) pollOne(ctx context.Context, meetingID uuid.UUID) error {
	return s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		meeting, err := repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		// A re-upload between listing and polling resets the pipeline; the
		// old token no longer matters.
		if meeting.AIToken == nil ||
			(meeting.AIStatus != models.AIProcessingStatusOnQueue &&
				meeting.AIStatus != models.AIProcessingStatusProcessing) {
			return nil
		}

		done, status, err := s.client.GetStatus(ctx, *meeting.AIToken)
		if err != nil {
			return domain.NewUnavailableError("Failed to poll AI submission", err)
		}

		if !done {
			if status == "processing" && meeting.AIStatus == models.AIProcessingStatusOnQueue {
				meeting.AIStatus = models.AIProcessingStatusProcessing
				return repos.Meetings.Update(ctx, meeting)
			}
			return nil
		}

		if status == "failed" {
			meeting.AIStatus = models.AIProcessingStatusFailed
			return repos.Meetings.Update(ctx, meeting)
		}

		report, err := s.client.GetReport(ctx, *meeting.AIToken)
		if err != nil {
			return domain.NewUnavailableError("Failed to fetch AI report", err)
		}

		now := time.Now().UTC()
		keyPoints := strings.Join(report.KeyPoints, "\n")
		meeting.Transcript = &report.Transcript
		meeting.Summary = &report.Summary
		meeting.KeyPoints = &keyPoints
		meeting.AIProcessedAt = &now
		meeting.AIStatus = models.AIProcessingStatusDone
		return repos.Meetings.Update(ctx, meeting)
	})
}

// Run polls on the given interval until the context is cancelled.
func (s *AIService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "AI poller started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "AI poller stopped")
			return
		case <-ticker.C:
			s.Poll(ctx)
		}
	}
}
