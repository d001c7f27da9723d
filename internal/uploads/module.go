package uploads

import (
	"context"

	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/validator"
)

// Module wires the photo upload routes.
type Module struct {
	store   ObjectStore
	bucket  string
	handler *Handler
}

// NewModule uses MinIO when configured and mocks uploads otherwise.
func NewModule(cfg config.MinIOConfig, val *validator.Validator, log *logger.Logger) (*Module, error) {
	var store ObjectStore
	if cfg.IsMinIOEnabled() {
		s, err := NewMinIOStore(cfg)
		if err != nil {
			return nil, err
		}
		store = s
	} else {
		log.Warn("photo uploads mocked: MINIO_ENDPOINT not configured")
	}

	bucket := cfg.GetMinioBucketPropertyPhotos()
	svc := NewService(store, bucket, cfg.GetMinIOMaxFileSize(), log)
	return &Module{store: store, bucket: bucket, handler: NewHandler(svc, val)}, nil
}

// EnsureBucket creates the photo bucket. It is a no-op for mocked storage.
func (m *Module) EnsureBucket(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	return m.store.EnsureBucket(ctx, m.bucket)
}

func (m *Module) Name() string {
	return "uploads"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/uploads/photos/presign", m.handler.PresignPhoto)
}

var _ apphttp.Module = (*Module)(nil)
