// Package flatten denormalizes a menu catalog into the flat row table
// used for spreadsheet review. The whole package is pure: no I/O, no
// logging, no shared state, safe to run concurrently on independent
// catalogs.
package flatten

import "menulens/internal/catalog"

// Flatten expands every item of the catalog into flat rows, in item
// source order. A catalog with no items still yields exactly one row
// carrying the restaurant context, so the export is never empty.
func Flatten(c *catalog.Catalog) []Row {
	idx := buildIndexes(c.Categories, c.AddonGroups)

	rc := restaurantContext{name: c.Restaurant.Name.Ptr()}
	if len(c.Areas) > 0 {
		rc.areaID = c.Areas[0].AreaID.Ptr()
		rc.areaDisplayName = c.Areas[0].DisplayName.Ptr()
	}

	if len(c.Items) == 0 {
		return []Row{{
			RestaurantName:  rc.name,
			AreaID:          rc.areaID,
			AreaDisplayName: rc.areaDisplayName,
		}}
	}

	var rows []Row
	for _, item := range c.Items {
		rows = append(rows, expandItem(item, idx, rc)...)
	}
	return rows
}
