// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package models

// Audio source values recorded alongside an ingested asset.
const (
	AudioSourceUpload    = "upload"
	AudioSourceRecording = "recording"
)

// AudioFile is an uploaded audio asset prior to ingestion.
type AudioFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}

// AIReport is the result fetched from the AI processing service once a
// submission completes.
type AIReport struct {
	Transcript string   `json:"transcript"`
	Summary    string   `json:"summary"`
	KeyPoints  []string `json:"key_points"`
}

// Room identifies a remote video room created for an online meeting.
type Room struct {
	SID  string `json:"sid"`
	Name string `json:"name"`
}
