// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/vidora/vidora/internal/config"
	"github.com/vidora/vidora/internal/logger"
)

// s3BlobStore is the S3-compatible implementation of [BlobStore]. It works
// against AWS S3 proper or any endpoint speaking the S3 API (MinIO in local
// deployments) via the configurable base endpoint.
type s3BlobStore struct {
	client        *s3.Client
	logger        *logger.Logger
	bucket        string
	publicBaseURL string
}

// NewS3BlobStore builds an S3 client from static credentials and verifies
// nothing up front; the first Upload surfaces connectivity problems.
func NewS3BlobStore(ctx context.Context, cfg config.Blob, log *logger.Logger) (BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		log.Err(err).Str("func", "NewS3BlobStore").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("func", "NewS3BlobStore").Str("bucket", cfg.Bucket).Msg("blob store configured")

	return &s3BlobStore{
		client:        client,
		logger:        log,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// storageKey generates a date-partitioned object key. Partitioning by date
// keeps bucket listings manageable and the uuid makes collisions impossible.
func storageKey() string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}

func (s *s3BlobStore) Upload(ctx context.Context, blob Blob) (string, error) {
	log := logger.FromContext(ctx)

	if len(blob.Data) == 0 {
		return "", ErrEmptyBlob
	}

	key := storageKey()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(blob.Data),
		ContentType: aws.String(blob.ContentType),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3BlobStore.Upload").Str("key", key).Msg("error uploading object")
		return "", fmt.Errorf("error uploading object: %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *s3BlobStore) Delete(ctx context.Context, url string) error {
	log := logger.FromContext(ctx)

	key, ok := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !ok || key == "" {
		return ErrNotManagedURL
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3BlobStore.Delete").Str("key", key).Msg("error deleting object")
		return fmt.Errorf("error deleting object: %w", err)
	}

	return nil
}
