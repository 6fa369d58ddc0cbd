// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package transcode converts uploaded audio to MP3 using ffmpeg.
package transcode

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/projectly/meeting-service/internal/domain"
)

// DefaultTimeout bounds a single transcode run.
const DefaultTimeout = 2 * time.Minute

// FFmpegTranscoder shells out to ffmpeg, streaming audio through stdin and
// stdout so no temp files are written.
type FFmpegTranscoder struct {
	// Binary is the ffmpeg executable, "ffmpeg" by default.
	Binary string
	// Timeout bounds a single run, DefaultTimeout by default.
	Timeout time.Duration
}

// Ensure that FFmpegTranscoder implements the domain port
var _ domain.AudioTranscoder = (*FFmpegTranscoder)(nil)

// NewFFmpegTranscoder creates a transcoder using the ffmpeg binary on PATH.
func NewFFmpegTranscoder() *FFmpegTranscoder {
	return &FFmpegTranscoder{
		Binary:  "ffmpeg",
		Timeout: DefaultTimeout,
	}
}

// TranscodeToMP3 converts the source audio bytes to MP3.
func (t *FFmpegTranscoder) TranscodeToMP3(ctx context.Context, src []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.Binary,
		"-i", "pipe:0",
		"-f", "mp3",
		"-codec:a", "libmp3lame",
		"-qscale:a", "2",
		"pipe:1",
	)
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		slog.ErrorContext(ctx, "ffmpeg transcode failed",
			"error", err,
			"stderr", truncate(stderr.String(), 2048),
		)
		return nil, fmt.Errorf("transcoding audio: %w", err)
	}

	slog.DebugContext(ctx, "transcoded audio to mp3",
		"input_bytes", len(src),
		"output_bytes", stdout.Len(),
		"duration", time.Since(start),
	)

	return stdout.Bytes(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
