package brochure

import (
	"encoding/base64"
	"html/template"

	"github.com/skip2/go-qrcode"
)

const qrSize = 160

// qrDataURL encodes content as a PNG QR code inlined as a data URL.
func qrDataURL(content string) (template.URL, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		return "", err
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil
}
