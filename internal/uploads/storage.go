package uploads

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"property_brochure_backend/platform/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PresignedURLTTL is how long an upload URL stays valid.
const PresignedURLTTL = 15 * time.Minute

// ObjectStore is the slice of S3-compatible storage the upload flow needs.
type ObjectStore interface {
	PresignPut(ctx context.Context, bucket, key string, ttl time.Duration) (*url.URL, error)
	EnsureBucket(ctx context.Context, bucket string) error
	PublicURL(bucket, key string) string
}

// MinIOStore implements ObjectStore using MinIO.
type MinIOStore struct {
	client     *minio.Client
	publicBase string
}

// NewMinIOStore creates a MinIO client from cfg.
func NewMinIOStore(cfg config.MinIOConfig) (*MinIOStore, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	base := strings.TrimRight(cfg.GetMinIOPublicBaseURL(), "/")
	if base == "" {
		scheme := "http"
		if cfg.GetMinIOUseSSL() {
			scheme = "https"
		}
		base = scheme + "://" + cfg.GetMinIOEndpoint()
	}

	return &MinIOStore{client: client, publicBase: base}, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
func (s *MinIOStore) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// PresignPut returns a presigned PUT URL for key.
func (s *MinIOStore) PresignPut(ctx context.Context, bucket, key string, ttl time.Duration) (*url.URL, error) {
	u, err := s.client.PresignedPutObject(ctx, bucket, key, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned upload URL: %w", err)
	}
	return u, nil
}

// PublicURL is where the object is readable once uploaded.
func (s *MinIOStore) PublicURL(bucket, key string) string {
	return s.publicBase + "/" + bucket + "/" + key
}

var _ ObjectStore = (*MinIOStore)(nil)
