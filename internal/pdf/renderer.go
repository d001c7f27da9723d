// Package pdf renders brochure HTML into A4 PDF documents.
package pdf

import (
	"context"

	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
)

const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	// 20mm on every side.
	marginInches = 0.787
)

// Renderer turns a self-contained HTML document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// NewRenderer picks Gotenberg when it is configured and a local headless
// Chrome otherwise.
func NewRenderer(cfg config.RendererConfig, log *logger.Logger) Renderer {
	if cfg.IsGotenbergEnabled() {
		log.Info("pdf rendering via gotenberg", "url", cfg.GetGotenbergURL())
		return NewGotenbergClient(cfg.GetGotenbergURL(), cfg.GetGotenbergUsername(), cfg.GetGotenbergPassword())
	}
	log.Info("pdf rendering via headless chrome")
	return NewChromeRenderer(cfg.GetChromeBin(), log)
}
