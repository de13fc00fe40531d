package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"menulens/internal/config"
	"menulens/internal/export"
	"menulens/internal/llm"
	"menulens/internal/logger"
	"menulens/internal/ocr"
	"menulens/internal/pipeline"
	"menulens/internal/storage"
)

func main() {
	cmd := &cli.Command{
		Name:  "menulens",
		Usage: "Convert restaurant menu photos into structured spreadsheets",
		Commands: []*cli.Command{
			ocrCommand(),
			convertCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func ocrCommand() *cli.Command {
	return &cli.Command{
		Name:  "ocr",
		Usage: "Extract text from menu images using OCR only",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "image file or directory", Required: true},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output directory for extracted text"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "parallel OCR workers (default: auto)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "verbose debug logging"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger.SetDebug(c.Bool("debug"))
			log := logger.Get()

			cfg := config.Load()
			if w := int(c.Int("workers")); w > 0 {
				cfg.OCR.Workers = w
			}
			if err := cfg.ValidateForOCR(); err != nil {
				return err
			}
			if err := ocr.CheckInstalled(); err != nil {
				return err
			}

			files, skipped, err := collectInput(c.String("input"))
			if err != nil {
				return err
			}
			log.Info("scan complete",
				zap.Int("images", len(files)),
				zap.Int("skipped", skipped),
			)

			pool := ocr.NewPool(cfg.OCR.Workers, cfg.OCR.Timeout, nil, log)
			p := pipeline.New(pool, nil, export.Options{}, nil, log)

			sum := p.ExtractOnly(ctx, files, c.String("output"))
			if sum.Extracted == 0 {
				return errors.New("no images were successfully processed")
			}
			return nil
		},
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Convert menu images to structured Excel/JSON using OCR + Gemini",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "menu image file or directory", Required: true},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output directory", Required: true},
			&cli.StringFlag{Name: "model", Usage: "Gemini model override"},
			&cli.BoolFlag{Name: "no-json", Usage: "skip JSON export (Excel only)"},
			&cli.BoolFlag{Name: "no-excel", Usage: "skip Excel export (JSON only)"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "parallel OCR workers (default: auto)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "verbose debug logging"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger.SetDebug(c.Bool("debug"))
			log := logger.Get()

			cfg := config.Load()
			if m := c.String("model"); m != "" {
				cfg.Gemini.Model = m
			}
			if w := int(c.Int("workers")); w > 0 {
				cfg.OCR.Workers = w
			}
			if err := cfg.ValidateForConvert(); err != nil {
				return err
			}
			if err := ocr.CheckInstalled(); err != nil {
				return err
			}

			files, skipped, err := collectInput(c.String("input"))
			if err != nil {
				return err
			}
			log.Info("scan complete",
				zap.Int("images", len(files)),
				zap.Int("skipped", skipped),
			)

			var uploader pipeline.Uploader
			if cfg.R2.Enabled() {
				r2, err := storage.NewR2Client(ctx, cfg.R2)
				if err != nil {
					return fmt.Errorf("storage init: %w", err)
				}
				uploader = r2
			}

			pool := ocr.NewPool(cfg.OCR.Workers, cfg.OCR.Timeout, nil, log)
			client := llm.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
			opts := export.Options{
				Dir:          c.String("output"),
				IncludeExcel: !c.Bool("no-excel"),
				IncludeJSON:  !c.Bool("no-json"),
			}

			p := pipeline.New(pool, client, opts, uploader, log)

			sum := p.Convert(ctx, files)
			if sum.Converted == 0 {
				return errors.New("no files were successfully converted")
			}
			return nil
		},
	}
}

// collectInput resolves the -i argument to a list of image files.
func collectInput(input string) (files []string, skipped int, err error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, 0, fmt.Errorf("nothing found at %q: %w", input, err)
	}

	if info.IsDir() {
		files, skipped, err = ocr.ScanDir(input)
		if err != nil {
			return nil, 0, err
		}
		if len(files) == 0 {
			return nil, 0, fmt.Errorf("no valid image files found, supported: %v", ocr.ValidExtensions())
		}
		return files, skipped, nil
	}

	if !ocr.IsValidImage(input) {
		return nil, 0, fmt.Errorf("unsupported file type %q, supported: %v", input, ocr.ValidExtensions())
	}
	return []string{input}, 0, nil
}
