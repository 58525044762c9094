package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/palengke-dev/palengke/internal/config"
	"github.com/palengke-dev/palengke/internal/logger"
	"github.com/palengke-dev/palengke/internal/service"
)

// Storage stores listing images in a MinIO/S3 bucket and hands back publicly
// fetchable URLs. The rest of the system treats those URLs as opaque strings.
type Storage struct {
	client *minio.Client
	bucket string
}

// Ensure Storage implements the interface at compile time.
var _ service.ObjectStorage = (*Storage)(nil)

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	s3cfg := cfg.Public.S3
	client, err := minio.New(s3cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s3cfg.AccessKey, cfg.Private.S3SecretKey, ""),
		Secure: s3cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", s3cfg.Endpoint, err)
	}

	if err := ensureBucket(ctx, client, s3cfg.Bucket); err != nil {
		return nil, err
	}

	return &Storage{client: client, bucket: s3cfg.Bucket}, nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	if err != nil {
		// MakeBucket fails if the bucket is already there; that's fine
		exists, existsErr := client.BucketExists(ctx, bucket)
		if existsErr == nil && exists {
			return nil
		}
		return fmt.Errorf("failed to make/verify bucket %s: %w", bucket, err)
	}
	logger.Log.Info("created bucket", "bucket", bucket)
	return nil
}

// Save writes an object and returns its public URL. Object keys are generated
// upstream from uuids, so an existing key is a hard failure, never an overwrite.
func (s *Storage) Save(ctx context.Context, objectKey string, data io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, objectKey), nil
}
