// Package pipeline drives the batch flow: OCR pool → catalog inference →
// flattening → export. Every per-file failure is isolated and counted;
// one bad image never aborts the batch.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"menulens/internal/export"
	"menulens/internal/flatten"
	"menulens/internal/llm"
	"menulens/internal/ocr"
)

// Uploader pushes a finished export to shared storage. Optional.
type Uploader interface {
	UploadFile(ctx context.Context, key, localPath string) (string, error)
}

type Pipeline struct {
	pool     *ocr.Pool
	client   llm.Client
	export   export.Options
	uploader Uploader
	log      *zap.Logger
	runID    string
}

// Summary reports a batch run's outcome.
type Summary struct {
	Attempted int
	Extracted int
	Converted int
	Failed    int
}

func New(
	pool *ocr.Pool,
	client llm.Client,
	exportOpts export.Options,
	uploader Uploader,
	log *zap.Logger,
) *Pipeline {
	return &Pipeline{
		pool:     pool,
		client:   client,
		export:   exportOpts,
		uploader: uploader,
		log:      log,
		runID:    uuid.New().String(),
	}
}

// Convert runs the full pipeline over the given image files. OCR runs
// on the bounded pool; inference, flattening, and export are applied
// synchronously to each result as the spec's stages are single-threaded
// past extraction.
func (p *Pipeline) Convert(ctx context.Context, files []string) Summary {
	sum := Summary{Attempted: len(files)}

	results := p.pool.Run(ctx, files)

	for _, res := range results {
		if res.Err != nil || strings.TrimSpace(res.Text) == "" {
			sum.Failed++
			continue
		}
		sum.Extracted++

		if err := p.convertOne(ctx, res); err != nil {
			p.log.Error("conversion failed",
				zap.String("file", res.Name),
				zap.Error(err),
			)
			sum.Failed++
			continue
		}
		sum.Converted++
	}

	p.logSummary(sum)
	return sum
}

func (p *Pipeline) convertOne(ctx context.Context, res ocr.Result) error {
	cat, err := llm.ParseCatalog(ctx, p.client, ocr.Clean(res.Text), res.Path)
	if err != nil {
		return fmt.Errorf("inference: %w", err)
	}

	rows := flatten.Flatten(cat)
	projected := flatten.Project(rows)

	files, err := export.Write(p.export, res.Name, cat, flatten.Columns, projected)
	if err != nil {
		return err
	}

	p.log.Info("converted",
		zap.String("file", res.Name),
		zap.Int("rows", len(rows)),
		zap.String("excel", files.Excel),
		zap.String("json", files.JSON),
	)

	p.uploadExports(ctx, files)
	return nil
}

// uploadExports ships the written files to shared storage when an
// uploader is configured. Upload failure is logged but does not fail
// the file: the local export already succeeded.
func (p *Pipeline) uploadExports(ctx context.Context, files export.Files) {
	if p.uploader == nil {
		return
	}
	for _, path := range []string{files.Excel, files.JSON} {
		if path == "" {
			continue
		}
		key := fmt.Sprintf("exports/%s/%s", p.runID, filepath.Base(path))
		url, err := p.uploader.UploadFile(ctx, key, path)
		if err != nil {
			p.log.Warn("upload failed", zap.String("path", path), zap.Error(err))
			continue
		}
		p.log.Info("uploaded", zap.String("url", url))
	}
}

// ExtractOnly runs just the OCR stage. With outDir set, each file's
// text is written as <stem>.txt; otherwise it is printed to stdout.
func (p *Pipeline) ExtractOnly(ctx context.Context, files []string, outDir string) Summary {
	sum := Summary{Attempted: len(files)}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			p.log.Error("cannot create output dir", zap.Error(err))
			sum.Failed = len(files)
			return sum
		}
	}

	for _, res := range p.pool.Run(ctx, files) {
		if res.Err != nil {
			sum.Failed++
			continue
		}

		if outDir == "" {
			fmt.Printf("\n=== %s ===\n%s\n", res.Name, res.Text)
			sum.Extracted++
			continue
		}

		stem := strings.TrimSuffix(res.Name, filepath.Ext(res.Name))
		dst := filepath.Join(outDir, stem+".txt")
		if err := os.WriteFile(dst, []byte(res.Text), 0o644); err != nil {
			p.log.Error("write failed", zap.String("file", res.Name), zap.Error(err))
			sum.Failed++
			continue
		}
		sum.Extracted++
	}

	p.logSummary(sum)
	return sum
}

func (p *Pipeline) logSummary(sum Summary) {
	p.log.Info("batch complete",
		zap.Int("attempted", sum.Attempted),
		zap.Int("extracted", sum.Extracted),
		zap.Int("converted", sum.Converted),
		zap.Int("failed", sum.Failed),
	)
}
