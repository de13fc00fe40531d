package flatten

import (
	"testing"

	"menulens/internal/catalog"
)

// --------------------------------------------------
// Builders
// --------------------------------------------------

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Restaurant: catalog.Restaurant{Name: catalog.T("Test Calzone")},
		Categories: []catalog.Category{
			{
				CategoryID: catalog.T("C1"),
				Name:       catalog.T("Calzone Menu"),
				Rank:       catalog.T("1"),
			},
		},
		AddonGroups: []catalog.AddonGroup{
			{
				GroupID: catalog.T("G1"),
				Name:    catalog.T("Extras"),
				Items: []catalog.AddonItem{
					{AddonItemID: catalog.T("A1"), Name: catalog.T("Cheese"), Price: catalog.T("20")},
					{AddonItemID: catalog.T("A2"), Name: catalog.T("Olives"), Price: catalog.T("15")},
				},
			},
		},
	}
}

func itemWith(variations []catalog.Variation, refs []catalog.AddonRef) catalog.Item {
	return catalog.Item{
		ItemID:     catalog.T("I1"),
		Name:       catalog.T("Chicken Teriyaki"),
		CategoryID: catalog.T("C1"),
		Price:      catalog.T("259"),
		Variations: variations,
		AddonRefs:  refs,
	}
}

func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

// --------------------------------------------------
// Case A: simple item
// --------------------------------------------------

func TestSimpleItemEmitsOneRow(t *testing.T) {
	c := testCatalog()
	c.Items = []catalog.Item{itemWith(nil, nil)}

	rows := Flatten(c)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if deref(row.ItemName) != "Chicken Teriyaki" {
		t.Fatalf("item name = %s", deref(row.ItemName))
	}
	if deref(row.CategoryName) != "Calzone Menu" {
		t.Fatalf("category not resolved: %s", deref(row.CategoryName))
	}
	if row.VariationID != nil || row.AddonGroupID != nil || row.AddonName != nil {
		t.Fatalf("variation/addon fields must be null on a simple item")
	}
}

func TestUnresolvedCategoryLeavesFieldsNull(t *testing.T) {
	c := testCatalog()
	item := itemWith(nil, nil)
	item.CategoryID = catalog.T("NOPE")
	c.Items = []catalog.Item{item}

	rows := Flatten(c)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].CategoryName != nil || rows[0].CategoryRank != nil {
		t.Fatalf("unknown category must leave name/rank null, not error")
	}
	if deref(rows[0].CategoryID) != "NOPE" {
		t.Fatalf("category id must pass through, got %s", deref(rows[0].CategoryID))
	}
}

// --------------------------------------------------
// Case B: variations only
// --------------------------------------------------

func TestVariationsOnlyOneRowEach(t *testing.T) {
	c := testCatalog()
	c.Items = []catalog.Item{itemWith([]catalog.Variation{
		{VariationID: catalog.T("V1"), Name: catalog.T("Regular"), Price: catalog.T("100")},
		{VariationID: catalog.T("V2"), Name: catalog.T("Large"), Price: catalog.T("150")},
	}, nil)}

	rows := Flatten(c)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if deref(rows[0].VariationName) != "Regular" || deref(rows[1].VariationName) != "Large" {
		t.Fatalf("variations out of source order: %s, %s",
			deref(rows[0].VariationName), deref(rows[1].VariationName))
	}
	for _, row := range rows {
		if row.AddonGroupID != nil || row.AddonName != nil {
			t.Fatalf("addon fields must be null in case B")
		}
	}
}

// --------------------------------------------------
// Case C: addons only
// --------------------------------------------------

func TestAddonsOnlyOneRowPerAddonItem(t *testing.T) {
	c := testCatalog()
	c.Items = []catalog.Item{itemWith(nil, []catalog.AddonRef{
		{GroupID: catalog.T("G1"), SelectionMin: catalog.T("0"), SelectionMax: catalog.T("2")},
	})}

	rows := Flatten(c)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if deref(rows[0].AddonName) != "Cheese" || deref(rows[1].AddonName) != "Olives" {
		t.Fatalf("addon items out of source order")
	}
	for _, row := range rows {
		if row.VariationID != nil {
			t.Fatalf("variation fields must be null in case C")
		}
		if deref(row.AddonGroupName) != "Extras" {
			t.Fatalf("group name not resolved: %s", deref(row.AddonGroupName))
		}
		if deref(row.AddonSelectionMin) != "0" || deref(row.AddonSelectionMax) != "2" {
			t.Fatalf("selection constraints not carried")
		}
	}
}

func TestUnresolvedGroupEmitsPlaceholderRow(t *testing.T) {
	c := testCatalog()
	c.Items = []catalog.Item{itemWith(nil, []catalog.AddonRef{
		{GroupID: catalog.T("MISSING")},
	})}

	rows := Flatten(c)
	if len(rows) != 1 {
		t.Fatalf("an addon reference must never disappear: got %d rows", len(rows))
	}

	row := rows[0]
	if deref(row.AddonGroupID) != "MISSING" {
		t.Fatalf("group id must be carried, got %s", deref(row.AddonGroupID))
	}
	if row.AddonGroupName != nil || row.AddonID != nil || row.AddonName != nil || row.AddonPrice != nil {
		t.Fatalf("unresolved group must leave name and item fields null")
	}
}

func TestEmptyGroupEmitsPlaceholderWithName(t *testing.T) {
	c := testCatalog()
	c.AddonGroups = append(c.AddonGroups, catalog.AddonGroup{
		GroupID: catalog.T("G2"),
		Name:    catalog.T("Seasonal"),
	})
	c.Items = []catalog.Item{itemWith(nil, []catalog.AddonRef{
		{GroupID: catalog.T("G2")},
	})}

	rows := Flatten(c)
	if len(rows) != 1 {
		t.Fatalf("expected 1 placeholder row, got %d", len(rows))
	}
	if deref(rows[0].AddonGroupName) != "Seasonal" {
		t.Fatalf("resolved empty group keeps its name, got %s", deref(rows[0].AddonGroupName))
	}
	if rows[0].AddonID != nil || rows[0].AddonName != nil {
		t.Fatalf("empty group must leave addon item fields null")
	}
}

// --------------------------------------------------
// Case D: cartesian product
// --------------------------------------------------

func TestVariationAddonCartesianProduct(t *testing.T) {
	c := testCatalog()
	c.Items = []catalog.Item{itemWith(
		[]catalog.Variation{
			{VariationID: catalog.T("V1"), Name: catalog.T("Regular"), Price: catalog.T("100")},
			{VariationID: catalog.T("V2"), Name: catalog.T("Large"), Price: catalog.T("150")},
		},
		[]catalog.AddonRef{
			{GroupID: catalog.T("G1"), SelectionMin: catalog.T("0"), SelectionMax: catalog.T("2")},
		},
	)}

	rows := Flatten(c)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	want := []struct{ variation, addon string }{
		{"Regular", "Cheese"},
		{"Regular", "Olives"},
		{"Large", "Cheese"},
		{"Large", "Olives"},
	}
	for i, w := range want {
		if deref(rows[i].VariationName) != w.variation || deref(rows[i].AddonName) != w.addon {
			t.Fatalf("row %d: got (%s, %s), want (%s, %s)",
				i, deref(rows[i].VariationName), deref(rows[i].AddonName), w.variation, w.addon)
		}
		if deref(rows[i].CategoryName) != "Calzone Menu" {
			t.Fatalf("row %d: category not resolved", i)
		}
	}

	if deref(rows[0].VariationPrice) != "100" || deref(rows[2].VariationPrice) != "150" {
		t.Fatalf("variation prices not carried")
	}
	if deref(rows[0].AddonPrice) != "20" || deref(rows[1].AddonPrice) != "15" {
		t.Fatalf("addon prices not carried")
	}
}

// --------------------------------------------------
// Row-count invariant: N·Σ max(kᵢ, 1)
// --------------------------------------------------

func TestRowCountWithEmptyGroupInProduct(t *testing.T) {
	c := testCatalog()
	c.AddonGroups = append(c.AddonGroups, catalog.AddonGroup{
		GroupID: catalog.T("G2"),
		Name:    catalog.T("Seasonal"),
	})
	// 2 variations × (2 addon items + 1 placeholder) = 6
	c.Items = []catalog.Item{itemWith(
		[]catalog.Variation{
			{VariationID: catalog.T("V1"), Name: catalog.T("Regular")},
			{VariationID: catalog.T("V2"), Name: catalog.T("Large")},
		},
		[]catalog.AddonRef{
			{GroupID: catalog.T("G1")},
			{GroupID: catalog.T("G2")},
		},
	)}

	rows := Flatten(c)
	if len(rows) != 6 {
		t.Fatalf("expected 2*(2+1)=6 rows, got %d", len(rows))
	}

	// Every variation and every ref must appear somewhere.
	seenVariation := map[string]bool{}
	seenGroup := map[string]bool{}
	for _, row := range rows {
		seenVariation[deref(row.VariationID)] = true
		seenGroup[deref(row.AddonGroupID)] = true
	}
	for _, v := range []string{"V1", "V2"} {
		if !seenVariation[v] {
			t.Fatalf("variation %s lost from output", v)
		}
	}
	for _, g := range []string{"G1", "G2"} {
		if !seenGroup[g] {
			t.Fatalf("addon ref %s lost from output", g)
		}
	}
}
