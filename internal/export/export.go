// Package export persists flattened menus: an Excel workbook for human
// review and an optional JSON copy of the catalog for auditability.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"menulens/internal/catalog"
)

// Options controls which sinks run for a batch.
type Options struct {
	Dir          string
	IncludeExcel bool
	IncludeJSON  bool
}

// Files holds the paths written for one source image. Empty string
// means that sink was disabled.
type Files struct {
	Excel string
	JSON  string
}

// Write persists one flattened catalog. A sink failure aborts this
// file's export only; the caller decides whether the batch continues.
func Write(
	opts Options,
	imageName string,
	cat *catalog.Catalog,
	columns []string,
	rows [][]*string,
) (Files, error) {

	base := baseName(imageName)
	var files Files

	if opts.IncludeExcel {
		path := filepath.Join(opts.Dir, base+".xlsx")
		if err := WriteExcel(path, columns, rows); err != nil {
			return files, fmt.Errorf("excel export: %w", err)
		}
		files.Excel = path
	}

	if opts.IncludeJSON {
		path := filepath.Join(opts.Dir, base+".json")
		if err := WriteJSON(path, cat); err != nil {
			return files, fmt.Errorf("json export: %w", err)
		}
		files.JSON = path
	}

	return files, nil
}

// WriteJSON saves the pre-flattening catalog next to the workbook.
func WriteJSON(path string, cat *catalog.Catalog) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// baseName builds "menu_<stem>_<timestamp>" the exports share.
func baseName(imageName string) string {
	stem := strings.TrimSuffix(imageName, filepath.Ext(imageName))
	return fmt.Sprintf("menu_%s_%s", stem, time.Now().Format("20060102_150405"))
}
