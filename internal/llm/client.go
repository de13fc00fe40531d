package llm

import (
	"context"
)

// Client turns raw OCR text into a catalog JSON document. Implementations
// must return JSON only; the parser rejects anything else.
type Client interface {
	ParseMenu(ctx context.Context, ocrText string) (string, error)
}
