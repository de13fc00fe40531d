package ocr

import (
	"os"
	"path/filepath"
	"strings"
)

var validImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".gif":  true,
	".webp": true,
}

// ValidExtensions lists the supported image extensions for user-facing
// error messages.
func ValidExtensions() []string {
	exts := make([]string, 0, len(validImageExt))
	for ext := range validImageExt {
		exts = append(exts, ext)
	}
	return exts
}

// IsValidImage reports whether the filename carries a supported image
// extension.
func IsValidImage(filename string) bool {
	return validImageExt[strings.ToLower(filepath.Ext(filename))]
}

// ScanDir returns the supported image files directly under dir, in
// directory order, plus the count of skipped non-image files.
func ScanDir(dir string) (files []string, skipped int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsValidImage(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		} else {
			skipped++
		}
	}
	return files, skipped, nil
}
