// Package uploads hands out upload slots for property photos.
package uploads

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/logger"

	"github.com/google/uuid"
)

const photoFolder = "photos"

// Service presigns photo uploads, or mocks them when no store is configured.
type Service struct {
	store   ObjectStore
	bucket  string
	maxSize int64
	log     *logger.Logger
	now     func() time.Time
}

func NewService(store ObjectStore, bucket string, maxSize int64, log *logger.Logger) *Service {
	return &Service{store: store, bucket: bucket, maxSize: maxSize, log: log, now: time.Now}
}

// Presign validates the photo and returns an upload slot.
func (s *Service) Presign(ctx context.Context, req PresignRequest) (PresignResponse, error) {
	if err := validateContentType(req.ContentType); err != nil {
		return PresignResponse{}, apperr.Validation("Only JPEG, PNG and WebP photos are supported").WithDetails(err.Error())
	}
	if err := validateFileSize(req.Size, s.maxSize); err != nil {
		return PresignResponse{}, apperr.Validation("Photo is too large").WithDetails(err.Error())
	}

	id := uuid.New().String()
	key := objectKey(id, req.FileName, req.ContentType)
	now := s.now().UTC()
	file := domain.UploadedFile{
		ID:         id,
		Name:       req.FileName,
		Size:       req.Size,
		Type:       normalizeContentType(req.ContentType),
		UploadedAt: now,
	}

	if s.store == nil {
		file.URL = "mock://" + key
		return PresignResponse{Success: true, FileKey: key, File: file, Mocked: true}, nil
	}

	u, err := s.store.PresignPut(ctx, s.bucket, key, PresignedURLTTL)
	if err != nil {
		s.log.WithContext(ctx).UpstreamError("minio", 0, err)
		return PresignResponse{}, apperr.Upstream("Failed to prepare photo upload", err)
	}
	expires := now.Add(PresignedURLTTL)
	file.URL = s.store.PublicURL(s.bucket, key)

	return PresignResponse{
		Success:   true,
		UploadURL: u.String(),
		FileKey:   key,
		ExpiresAt: &expires,
		File:      file,
	}, nil
}

// objectKey builds photos/<slug>_<id8><ext>. The extension comes from the
// content type so a renamed file cannot choose its own.
func objectKey(id, fileName, contentType string) string {
	base := strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	return path.Join(photoFolder, fmt.Sprintf("%s_%s%s", slug(base), id[:8], allowedContentTypes[normalizeContentType(contentType)]))
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ' || r == '.':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "photo"
	}
	return out
}
