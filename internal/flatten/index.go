package flatten

import "menulens/internal/catalog"

// indexes are the two lookup maps built once per flattening run.
// Entries with a null id are not indexed, so a dangling reference simply
// fails to resolve. Duplicate ids overwrite: last entry wins, matching
// plain map construction. This is intentional, not an error condition.
type indexes struct {
	categoryByID   map[string]catalog.Category
	addonGroupByID map[string]catalog.AddonGroup
}

func buildIndexes(categories []catalog.Category, groups []catalog.AddonGroup) indexes {
	idx := indexes{
		categoryByID:   make(map[string]catalog.Category, len(categories)),
		addonGroupByID: make(map[string]catalog.AddonGroup, len(groups)),
	}
	for _, c := range categories {
		if c.CategoryID.Valid {
			idx.categoryByID[c.CategoryID.Value] = c
		}
	}
	for _, g := range groups {
		if g.GroupID.Valid {
			idx.addonGroupByID[g.GroupID.Value] = g
		}
	}
	return idx
}
