package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"menulens/internal/catalog"
)

// ParseCatalog asks the client for a catalog document, decodes it, and
// applies the documented defaults so the flattener's preconditions hold.
// A malformed response is an inference failure for that file only.
func ParseCatalog(
	ctx context.Context,
	client Client,
	ocrText string,
	sourceImage string,
) (*catalog.Catalog, error) {

	rawJSON, err := client.ParseMenu(ctx, ocrText)
	if err != nil {
		return nil, err
	}

	var c catalog.Catalog
	if err := json.Unmarshal([]byte(rawJSON), &c); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	catalog.Normalize(&c, sourceImage)
	return &c, nil
}
