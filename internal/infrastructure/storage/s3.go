// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package storage implements meeting audio object storage on Amazon S3.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/projectly/meeting-service/internal/domain"
)

// Config holds the S3 connection settings.
type Config struct {
	Region string
	Bucket string
}

// S3Storage stores audio objects in a single bucket. Object URLs returned
// by Upload use the bucket's virtual-hosted style and are resolvable back
// to keys by Delete and PresignedURL.
type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	baseURL string
}

// NewS3Storage creates an S3Storage from the ambient AWS credential chain.
func NewS3Storage(ctx context.Context, cfg Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", cfg.Bucket, cfg.Region),
	}, nil
}

// Ensure [S3Storage] implements [domain.ObjectStorage].
var _ domain.ObjectStorage = (*S3Storage)(nil)

// Upload stores the object and returns its URL.
func (s *S3Storage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading object %q: %w", key, err)
	}

	slog.DebugContext(ctx, "uploaded object", "bucket", s.bucket, "key", key)
	return s.baseURL + key, nil
}

// Delete removes a previously uploaded object by its URL.
func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key, err := s.keyFromURL(url)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting object %q: %w", key, err)
	}
	return nil
}

// PresignedURL returns a time-limited GET URL for the object.
func (s *S3Storage) PresignedURL(ctx context.Context, url string, ttl time.Duration) (string, error) {
	key, err := s.keyFromURL(url)
	if err != nil {
		return "", err
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presigning object %q: %w", key, err)
	}
	return req.URL, nil
}

func (s *S3Storage) keyFromURL(url string) (string, error) {
	if !strings.HasPrefix(url, s.baseURL) {
		return "", fmt.Errorf("object URL %q does not belong to bucket %q", url, s.bucket)
	}
	return strings.TrimPrefix(url, s.baseURL), nil
}
