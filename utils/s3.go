package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrArchiveDisabled is returned when no bucket is configured.
var ErrArchiveDisabled = errors.New("report archive is not configured")

// PresignExpiry is how long archive download links stay valid.
const PresignExpiry = time.Hour

// S3Archive stores report files in a bucket and hands out presigned links.
type S3Archive struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewS3Archive loads the default AWS config for the region. An empty bucket
// yields a disabled archive.
func NewS3Archive(ctx context.Context, region, bucket string) (*S3Archive, error) {
	if bucket == "" {
		return &S3Archive{}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3Archive{client: client, presign: s3.NewPresignClient(client), bucket: bucket}, nil
}

// Upload uploads a file to S3 and returns the Object Key
func (a *S3Archive) Upload(ctx context.Context, objectKey, contentType string, data []byte) (string, error) {
	if a.client == nil {
		return "", ErrArchiveDisabled
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return objectKey, nil
}

// PresignedURL generates a presigned URL for an object
func (a *S3Archive) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	if a.presign == nil {
		return "", ErrArchiveDisabled
	}

	request, err := a.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %w", err)
	}

	return request.URL, nil
}

// ReportKey is the object key for a user's archived report.
func ReportKey(userID string, at time.Time) string {
	return fmt.Sprintf("reports/%s/%s.pdf", userID, at.UTC().Format("20060102T150405Z"))
}
