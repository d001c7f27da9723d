// Command brochure-export renders a brochure request file to PDF or HTML
// without going through the HTTP API.
//
// Usage:
//
//	brochure-export --in request.json --out brochure.pdf
//	brochure-export --in request.json --format html > brochure.html
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"property_brochure_backend/internal/brochure"
	"property_brochure_backend/internal/pdf"
	"property_brochure_backend/platform/config"
	"property_brochure_backend/platform/logger"
	"property_brochure_backend/platform/validator"

	"github.com/spf13/cobra"
)

type options struct {
	in     string
	out    string
	format string
}

func main() {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "brochure-export",
		Short: "Render a brochure request to PDF or HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.in, "in", "-", "brochure request JSON file, - for stdin")
	cmd.Flags().StringVar(&opts.out, "out", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&opts.format, "format", "", "pdf or html (defaults to the request's format)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Env)

	req, err := readRequest(opts.in)
	if err != nil {
		return err
	}
	if opts.format != "" {
		req.Format = opts.format
	}
	if err := validator.New().Struct(req); err != nil {
		return fmt.Errorf("invalid brochure request: %w", err)
	}

	svc := brochure.NewService(brochure.Deps{
		PDF:  pdf.NewRenderer(cfg, log),
		HTML: brochure.NewHTMLRenderer(cfg.GetBrandName()),
	}, log)
	data := brochure.FromGenerateRequest(req)

	var out []byte
	if req.Format == brochure.FormatHTML {
		html, err := svc.RenderHTML(ctx, data)
		if err != nil {
			return err
		}
		out = []byte(html)
	} else {
		out, err = svc.GeneratePDF(ctx, data)
		if err != nil {
			return err
		}
	}

	if opts.out == "-" {
		_, err = stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.out, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	log.Info("brochure exported", "file", opts.out, "bytes", len(out))
	return nil
}

func readRequest(path string) (brochure.GenerateRequest, error) {
	var req brochure.GenerateRequest
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return req, fmt.Errorf("open request: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}
