// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package constants

import "time"

// Meeting scheduling constraints
const (
	// StartWindow is how far before or after the scheduled start time a
	// meeting is allowed to be started.
	StartWindow = 30 * time.Minute

	// MaxFutureInstances caps how many concrete occurrences of a recurring
	// pattern are materialized ahead of time.
	MaxFutureInstances = 30

	// MaxRepeatInterval is the largest allowed recurrence interval.
	MaxRepeatInterval = 365

	// MaxPatternDuration is how far into the future a recurring pattern's
	// end date may lie.
	MaxPatternDuration = 365 * 24 * time.Hour
)

// Audio ingestion constraints
const (
	// MaxAudioFileSize is the upper bound for uploaded audio files.
	MaxAudioFileSize = 200 << 20 // 200 MiB

	// AudioPresignTTL is the validity window for presigned playback and
	// processing URLs.
	AudioPresignTTL = 4 * time.Hour
)
