package ocr

import (
	"regexp"
	"strings"
)

// Clean tidies raw OCR output before it is handed to catalog inference:
// collapse whitespace, drop recognizer garbage, and cap the length so a
// noisy scan cannot blow the model's context window.
func Clean(raw string) string {
	if raw == "" {
		return raw
	}
	text := removeArtifacts(raw)
	text = normalizeWhitespace(text)
	return truncate(text, maxPromptChars)
}

const maxPromptChars = 15000

var (
	multiSpace   = regexp.MustCompile(`[ \t]+`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
)

func normalizeWhitespace(text string) string {
	text = multiSpace.ReplaceAllString(text, " ")
	text = multiNewline.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func removeArtifacts(text string) string {
	for _, artifact := range []string{"��", "�", "\f"} {
		text = strings.ReplaceAll(text, artifact, "")
	}
	return text
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	// Prefer a paragraph boundary when one exists past the halfway mark.
	if idx := strings.LastIndex(cut, "\n\n"); idx > max/2 {
		cut = cut[:idx]
	}
	return cut
}
