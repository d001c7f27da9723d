package uploads

import (
	"time"

	"property_brochure_backend/internal/domain"
)

// PresignRequest is the body of POST /api/v1/uploads/photos/presign.
type PresignRequest struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size" validate:"required,gt=0"`
}

// PresignResponse tells the client where to PUT the photo. UploadURL is
// empty when storage is mocked and the file is already "uploaded".
type PresignResponse struct {
	Success   bool                `json:"success"`
	UploadURL string              `json:"uploadUrl,omitempty"`
	FileKey   string              `json:"fileKey"`
	ExpiresAt *time.Time          `json:"expiresAt,omitempty"`
	File      domain.UploadedFile `json:"file"`
	Mocked    bool                `json:"mocked"`
}
