package pdf

import (
	"bytes"
	"context"
	"os"
	"testing"

	"property_brochure_backend/platform/logger"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
)

func TestNewLauncherSetsContainerFlags(t *testing.T) {
	l := newLauncher(context.Background(), "/opt/chrome/chrome")

	if got := l.Get(flags.Bin); got != "/opt/chrome/chrome" {
		t.Fatalf("expected configured bin, got %q", got)
	}
	if !l.Has(flags.Headless) {
		t.Fatalf("expected headless mode")
	}
	for _, flag := range []flags.Flag{"no-sandbox", "disable-setuid-sandbox", "single-process", "disable-gpu", "disable-dev-shm-usage"} {
		if !l.Has(flag) {
			t.Fatalf("expected flag %q", flag)
		}
	}
}

func TestNewLauncherWithoutBinLeavesDiscoveryToRod(t *testing.T) {
	l := newLauncher(context.Background(), "")
	if got := l.Get(flags.Bin); got != "" {
		t.Fatalf("expected no explicit bin, got %q", got)
	}
}

func TestPrintOptionsAreA4WithMargins(t *testing.T) {
	opts := printOptions()

	if *opts.PaperWidth != 8.27 || *opts.PaperHeight != 11.69 {
		t.Fatalf("expected A4, got %v x %v", *opts.PaperWidth, *opts.PaperHeight)
	}
	for name, margin := range map[string]*float64{
		"top":    opts.MarginTop,
		"bottom": opts.MarginBottom,
		"left":   opts.MarginLeft,
		"right":  opts.MarginRight,
	} {
		if margin == nil || *margin != 0.787 {
			t.Fatalf("expected 20mm %s margin, got %v", name, margin)
		}
	}
	if !opts.PrintBackground {
		t.Fatalf("expected backgrounds to print")
	}
}

func TestChromeRenderProducesPDF(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a browser")
	}
	bin := os.Getenv("CHROME_BIN")
	if bin == "" {
		found, ok := launcher.LookPath()
		if !ok {
			t.Skip("no local chrome found")
		}
		bin = found
	}

	out, err := NewChromeRenderer(bin, logger.Discard()).Render(context.Background(), "<html><body><h1>Brochure</h1></body></html>")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %q", out[:min(len(out), 16)])
	}
}

func TestChromeRenderMissingBinaryFails(t *testing.T) {
	r := NewChromeRenderer("/nonexistent/chrome", logger.Discard())
	if _, err := r.Render(context.Background(), "<html></html>"); err == nil {
		t.Fatalf("expected launch error")
	}
}
