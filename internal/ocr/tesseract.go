package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CheckInstalled verifies the tesseract binary is on PATH. Called once
// before a batch run so the failure is a single clear message instead
// of one error per file.
func CheckInstalled() error {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return fmt.Errorf("tesseract-ocr missing, install `tesseract` to resolve: %w", err)
	}
	return nil
}

// ExtractText runs tesseract on one image and returns the extracted
// text. The context bounds the run; a hung extraction is killed when
// the deadline passes.
func ExtractText(ctx context.Context, filePath string) (string, error) {
	cmd := exec.CommandContext(ctx, "tesseract", filePath, "stdout")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("tesseract timed out: %w", ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("tesseract failed: %s", msg)
		}
		return "", fmt.Errorf("tesseract failed: %w", err)
	}
	return string(out), nil
}
