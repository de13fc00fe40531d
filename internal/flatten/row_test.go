package flatten

import (
	"testing"

	"menulens/internal/catalog"
)

func TestCanonicalColumnOrder(t *testing.T) {
	if len(Columns) != 27 {
		t.Fatalf("column contract is 27 wide, got %d", len(Columns))
	}

	// Spot-check the anchors consumers key on.
	checks := map[int]string{
		0:  "restaurant_name",
		3:  "category_id",
		8:  "item_id",
		11: "price",
		15: "variation_item_id",
		19: "addon_name",
		26: "addon_group_name",
	}
	for i, want := range checks {
		if Columns[i] != want {
			t.Fatalf("column %d = %q, want %q", i, Columns[i], want)
		}
	}
}

func TestEveryProjectedRowHasAllColumns(t *testing.T) {
	c := testCatalog()
	c.Items = []catalog.Item{
		itemWith(nil, nil),
		itemWith([]catalog.Variation{{VariationID: catalog.T("V1")}}, nil),
		itemWith(nil, []catalog.AddonRef{{GroupID: catalog.T("G1")}}),
	}

	projected := Project(Flatten(c))
	if len(projected) == 0 {
		t.Fatal("no rows projected")
	}
	for i, row := range projected {
		if len(row) != len(Columns) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(Columns))
		}
	}
}

func TestProjectPreservesFieldPositions(t *testing.T) {
	name := "Pasta Palace"
	price := "259"
	row := Row{RestaurantName: &name, Price: &price}

	cells := Project([]Row{row})[0]
	if cells[0] == nil || *cells[0] != name {
		t.Fatalf("restaurant_name landed wrong")
	}
	if cells[11] == nil || *cells[11] != price {
		t.Fatalf("price landed in the wrong column")
	}
	for i, cell := range cells {
		if i != 0 && i != 11 && cell != nil {
			t.Fatalf("column %q should be null", Columns[i])
		}
	}
}
