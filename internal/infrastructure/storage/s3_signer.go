// Package storage issues pre-signed upload URLs for partner documents.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

const publicObjectPath = "/storage/v1/object/public/"

// NewS3Client builds the client for the documents bucket. A custom endpoint
// (MinIO, LocalStack) switches to path-style addressing.
func NewS3Client(awsCfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

type S3UploadSigner struct {
	presign    *s3.PresignClient
	bucket     string
	publicBase string
	ttl        time.Duration
	now        func() time.Time
}

var _ interfaces.IUploadSigner = (*S3UploadSigner)(nil)

func NewS3UploadSigner(client *s3.Client, bucket, publicBase string, ttl time.Duration) *S3UploadSigner {
	return &S3UploadSigner{
		presign:    s3.NewPresignClient(client),
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *S3UploadSigner) SignUpload(ctx context.Context, key string) (entities.UploadURL, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		slog.ErrorContext(ctx, "[storage][s3] presign failed", "key", key, "error", err)
		return entities.UploadURL{}, fmt.Errorf("presign %s: %w", key, err)
	}
	return entities.UploadURL{
		URL:       req.URL,
		Method:    req.Method,
		Path:      key,
		ExpiresAt: s.now().Add(s.ttl).UTC(),
	}, nil
}

func (s *S3UploadSigner) PublicURL(key string) string {
	return s.publicBase + publicObjectPath + s.bucket + "/" + strings.TrimLeft(key, "/")
}
