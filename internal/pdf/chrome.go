package pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"property_brochure_backend/platform/logger"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
)

// chromeFlags keep Chrome usable inside minimal containers.
var chromeFlags = []flags.Flag{
	"no-sandbox",
	"disable-setuid-sandbox",
	"disable-dev-shm-usage",
	"disable-accelerated-2d-canvas",
	"no-first-run",
	"no-zygote",
	"single-process",
	"disable-gpu",
}

// ChromeRenderer prints HTML with a headless Chrome started for each call.
type ChromeRenderer struct {
	bin         string
	log         *logger.Logger
	idleWindow  time.Duration
	renderLimit time.Duration
}

// NewChromeRenderer creates a renderer. An empty bin lets rod find or
// download a browser.
func NewChromeRenderer(bin string, log *logger.Logger) *ChromeRenderer {
	return &ChromeRenderer{
		bin:         bin,
		log:         log,
		idleWindow:  500 * time.Millisecond,
		renderLimit: 60 * time.Second,
	}
}

// Render loads html, waits for the network to go idle and prints A4 with
// 20mm margins and backgrounds. The browser is torn down on every path.
func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.renderLimit)
	defer cancel()

	launch := newLauncher(ctx, r.bin)
	controlURL, err := launch.Launch()
	if err != nil {
		// Cleanup blocks until a browser exits, which never happens when the
		// launch failed.
		_ = os.RemoveAll(launch.Get(flags.UserDataDir))
		return nil, fmt.Errorf("launch chrome: %w", err)
	}
	defer launch.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		launch.Kill()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			r.log.Warn("chrome close failed", "error", err)
			launch.Kill()
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}

	waitIdle := page.WaitRequestIdle(r.idleWindow, nil, nil, nil)
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	waitIdle()

	stream, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return data, nil
}

// newLauncher configures a headless Chrome with chromeFlags. An empty bin
// lets rod find or download a browser.
func newLauncher(ctx context.Context, bin string) *launcher.Launcher {
	launch := launcher.New().Context(ctx).Headless(true)
	if bin != "" {
		launch = launch.Bin(bin)
	}
	for _, flag := range chromeFlags {
		launch = launch.Set(flag)
	}
	return launch
}

// printOptions is A4 with 20mm margins and backgrounds.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(a4WidthInches),
		PaperHeight:     floatPtr(a4HeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

var _ Renderer = (*ChromeRenderer)(nil)
