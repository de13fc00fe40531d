package flatten

import "menulens/internal/catalog"

// restaurantContext carries the catalog-level fields every row repeats.
type restaurantContext struct {
	name            *string
	areaID          *string
	areaDisplayName *string
}

// expandItem produces the flat rows for a single item: one row per
// distinct (variation, addon-item) combination, source order preserved.
// It never drops a declared variation or addon reference and never
// errors; every unresolved lookup degrades to null fields or a
// placeholder row.
func expandItem(item catalog.Item, idx indexes, rc restaurantContext) []Row {
	base := baseRow(item, idx, rc)

	variations := item.Variations
	addonRefs := item.AddonRefs

	switch {
	case len(variations) == 0 && len(addonRefs) == 0:
		// Simple item: exactly one row.
		return []Row{base}

	case len(variations) > 0 && len(addonRefs) == 0:
		rows := make([]Row, 0, len(variations))
		for _, v := range variations {
			rows = append(rows, withVariation(base, v))
		}
		return rows

	case len(variations) == 0 && len(addonRefs) > 0:
		var rows []Row
		for _, ref := range addonRefs {
			rows = append(rows, addonRows(base, ref, idx)...)
		}
		return rows

	default:
		// Cartesian product: the sheet is a one-row-per-purchasable-
		// configuration table, so every pairing is spelled out.
		var rows []Row
		for _, v := range variations {
			varied := withVariation(base, v)
			for _, ref := range addonRefs {
				rows = append(rows, addonRows(varied, ref, idx)...)
			}
		}
		return rows
	}
}

// baseRow fills the restaurant, category, and item scopes. Category
// fields resolve through the index; an unknown or null category id
// leaves them null rather than failing.
func baseRow(item catalog.Item, idx indexes, rc restaurantContext) Row {
	row := Row{
		RestaurantName:  rc.name,
		AreaID:          rc.areaID,
		AreaDisplayName: rc.areaDisplayName,
		CategoryID:      item.CategoryID.Ptr(),
		ItemID:          item.ItemID.Ptr(),
		ItemName:        item.Name.Ptr(),
		ItemDescription: item.Description.Ptr(),
		Price:           item.Price.Ptr(),
		Rank:            item.Rank.Ptr(),
		ImageURL:        item.ImageURL.Ptr(),
		InStock:         item.InStock.Ptr(),
	}

	if item.CategoryID.Valid {
		if cat, ok := idx.categoryByID[item.CategoryID.Value]; ok {
			row.CategoryName = cat.Name.Ptr()
			row.CategoryImageURL = cat.ImageURL.Ptr()
			row.CategoryTimings = cat.Timings.Ptr()
			row.CategoryRank = cat.Rank.Ptr()
		}
	}

	return row
}

func withVariation(base Row, v catalog.Variation) Row {
	base.VariationItemID = v.VariationItemID.Ptr()
	base.VariationID = v.VariationID.Ptr()
	base.VariationName = v.Name.Ptr()
	base.VariationPrice = v.Price.Ptr()
	return base
}

// addonRows expands one addon reference. A resolved group with items
// yields one row per addon item. An unresolved group, or a group with
// no items, yields a single placeholder row carrying the reference's
// own fields — a declared reference never disappears from the output.
func addonRows(base Row, ref catalog.AddonRef, idx indexes) []Row {
	base.AddonGroupID = ref.GroupID.Ptr()
	base.AddonSelection = ref.Selection.Ptr()
	base.AddonSelectionMin = ref.SelectionMin.Ptr()
	base.AddonSelectionMax = ref.SelectionMax.Ptr()

	var group catalog.AddonGroup
	var resolved bool
	if ref.GroupID.Valid {
		group, resolved = idx.addonGroupByID[ref.GroupID.Value]
	}

	if resolved {
		base.AddonGroupName = group.Name.Ptr()
	}

	if !resolved || len(group.Items) == 0 {
		return []Row{base}
	}

	rows := make([]Row, 0, len(group.Items))
	for _, ai := range group.Items {
		row := base
		row.AddonID = ai.AddonItemID.Ptr()
		row.AddonName = ai.Name.Ptr()
		row.AddonPrice = ai.Price.Ptr()
		rows = append(rows, row)
	}
	return rows
}
