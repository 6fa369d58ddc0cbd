// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/projectly/meeting-service/internal/domain/models"
)

// MockObjectStorage implements domain.ObjectStorage for testing
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *MockObjectStorage) PresignedURL(ctx context.Context, url string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, url, ttl)
	return args.String(0), args.Error(1)
}

// MockNotificationQueue implements domain.NotificationQueue for testing
type MockNotificationQueue struct {
	mock.Mock
}

func (m *MockNotificationQueue) Publish(ctx context.Context, notification models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// MockAIClient implements domain.AIClient for testing
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) SubmitAudio(ctx context.Context, audioURL, language string) (string, error) {
	args := m.Called(ctx, audioURL, language)
	return args.String(0), args.Error(1)
}

func (m *MockAIClient) GetStatus(ctx context.Context, token string) (bool, string, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockAIClient) GetReport(ctx context.Context, token string) (*models.AIReport, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AIReport), args.Error(1)
}

// MockRoomService implements domain.RoomService for testing
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) CreateRoom(ctx context.Context, name string) (*models.Room, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomService) GenerateToken(room, identity, metadata string) (string, error) {
	args := m.Called(room, identity, metadata)
	return args.String(0), args.Error(1)
}

// MockAudioTranscoder implements domain.AudioTranscoder for testing
type MockAudioTranscoder struct {
	mock.Mock
}

func (m *MockAudioTranscoder) TranscodeToMP3(ctx context.Context, src []byte) ([]byte, error) {
	args := m.Called(ctx, src)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockInviteGenerator implements domain.InviteGenerator for testing
type MockInviteGenerator struct {
	mock.Mock
}

func (m *MockInviteGenerator) GenerateInvite(meeting *models.Meeting, pattern *models.RecurringMeetingPattern) (string, error) {
	args := m.Called(meeting, pattern)
	return args.String(0), args.Error(1)
}
