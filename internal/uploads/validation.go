package uploads

import (
	"fmt"
	"strings"
)

// allowedContentTypes are the photo formats a brochure can embed.
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// normalizeContentType strips parameters like charset.
func normalizeContentType(contentType string) string {
	normalized, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(strings.ToLower(normalized))
}

func validateContentType(contentType string) error {
	if _, ok := allowedContentTypes[normalizeContentType(contentType)]; !ok {
		return fmt.Errorf("content type %q is not allowed", contentType)
	}
	return nil
}

func validateFileSize(sizeBytes, maxBytes int64) error {
	if sizeBytes <= 0 {
		return fmt.Errorf("file size must be greater than 0")
	}
	if maxBytes > 0 && sizeBytes > maxBytes {
		return fmt.Errorf("file size %d bytes exceeds maximum allowed size of %d bytes", sizeBytes, maxBytes)
	}
	return nil
}
