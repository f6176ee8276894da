// Package batch renders every XML document of a directory into its own PDF.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/gompdf/danfe/internal/config"
	"github.com/gompdf/danfe/internal/layout"
	"github.com/gompdf/danfe/internal/logger"
	"github.com/gompdf/danfe/internal/parser/nfe"
	"github.com/gompdf/danfe/internal/render/pdf"
	"github.com/gompdf/danfe/internal/res"
)

// Result is the outcome of one input file
type Result struct {
	Path   string
	Output string
	Pages  int
	Err    error
}

// Runner renders the documents of InputDir into OutputDir
type Runner struct {
	InputDir       string
	OutputDir      string
	Kind           config.Kind
	MaxConcurrency int
	Options        pdf.RenderOptions

	renderer *pdf.Renderer
	loader   *res.Loader
}

// NewRunner builds a runner from a validated config. The logo, when
// configured, is loaded once and shared by every document.
func NewRunner(ctx context.Context, cfg *config.Config) (*Runner, error) {
	regime, err := layout.ParseTaxRegime(cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	loader := res.NewLoader("")
	loader.Cache = false

	renderer := pdf.NewRenderer()
	renderer.Regime = regime
	renderer.Receipt = layout.ReceiptPosition(cfg.ReceiptPosition)
	renderer.Debug = cfg.Debug
	if e := cfg.Emitter; e.Name != "" {
		renderer.Emitter = &pdf.Emitter{
			Name:     e.Name,
			Address:  e.Address,
			District: e.District,
			City:     e.City,
			State:    e.State,
			Phone:    e.Phone,
		}
	}
	if cfg.Logo != "" {
		logo, err := loader.LoadImage(ctx, cfg.Logo)
		if err != nil {
			return nil, fmt.Errorf("failed to load logo: %w", err)
		}
		renderer.Logo = logo.Data
	}

	return &Runner{
		InputDir:       cfg.InputDir,
		OutputDir:      cfg.OutputDir,
		Kind:           cfg.Kind,
		MaxConcurrency: cfg.MaxConcurrency,
		Options:        pdf.RenderOptions{Title: cfg.Title, Author: cfg.Author},
		renderer:       renderer,
		loader:         loader,
	}, nil
}

// Files lists the *.xml files of the input directory, sorted by name.
func (r *Runner) Files() ([]string, error) {
	entries, err := os.ReadDir(r.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			continue
		}
		files = append(files, filepath.Join(r.InputDir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Run renders every input file. A document that fails is reported in its
// Result and does not stop the others. The returned error is only set when
// the input directory cannot be read or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	files, err := r.Files()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	n := r.MaxConcurrency
	if n < 1 {
		n = 1
	}
	sem := semaphore.NewWeighted(int64(n))
	g, gctx := errgroup.WithContext(ctx)

	results := make([]Result, len(files))
	for i, path := range files {
		results[i] = Result{Path: path}
		if err := sem.Acquire(gctx, 1); err != nil {
			results[i].Err = err
			continue
		}
		i, path := i, path
		g.Go(func() error {
			defer sem.Release(1)
			results[i] = r.renderFile(gctx, path)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			logger.Error("render failed", "path", result.Path, "error", result.Err)
		}
	}
	logger.Info("batch finished", "files", len(files), "failed", failed)

	return results, ctx.Err()
}

func (r *Runner) renderFile(ctx context.Context, path string) Result {
	result := Result{Path: path, Output: r.outputPath(path)}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	src, err := r.loader.LoadXML(ctx, path)
	if err != nil {
		result.Err = err
		return result
	}

	// Write next to the final file and rename, so a failed document never
	// leaves a truncated PDF behind.
	tmp := filepath.Join(r.OutputDir, "."+uuid.NewString()+".pdf")
	var summary pdf.Summary
	switch r.Kind {
	case config.KindCCe:
		var ev *nfe.Event
		if ev, err = nfe.ParseEvent(src.Reader()); err == nil {
			summary, err = r.renderer.RenderCCeToFile([]*nfe.Event{ev}, tmp, r.Options)
		}
	default:
		var inv *nfe.Invoice
		if inv, err = nfe.ParseInvoice(src.Reader()); err == nil {
			summary, err = r.renderer.RenderToFile([]*nfe.Invoice{inv}, tmp, r.Options)
		}
	}
	if err == nil {
		err = os.Rename(tmp, result.Output)
	}
	if err != nil {
		_ = os.Remove(tmp)
		result.Err = fmt.Errorf("%s: %w", filepath.Base(path), err)
		return result
	}

	result.Pages = summary.Pages
	logger.Debug("rendered", "path", path, "output", result.Output, "pages", result.Pages)
	return result
}

func (r *Runner) outputPath(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(r.OutputDir, name+".pdf")
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, result := range results {
		if result.Err != nil {
			out = append(out, result)
		}
	}
	return out
}

// Err joins the errors of every failed result, or returns nil.
func Err(results []Result) error {
	var errs []error
	for _, result := range Failed(results) {
		errs = append(errs, result.Err)
	}
	return errors.Join(errs...)
}
