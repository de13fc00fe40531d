package flatten

// Columns is the canonical export column order. The exact names and
// positions are a wire contract consumers depend on; never reorder.
var Columns = []string{
	"restaurant_name",
	"area_id",
	"area_display_name",
	"category_id",
	"category_name",
	"category_image_url",
	"category_timings",
	"category_rank",
	"item_id",
	"item_name",
	"item_description",
	"price",
	"rank",
	"image_url",
	"instock",
	"variation_item_id",
	"variation_id",
	"variation_name",
	"variation_price",
	"addon_name",
	"addon_item_selection",
	"addon_item_selection_min",
	"addon_item_selection_max",
	"addon_price",
	"addon_id",
	"addon_group_id",
	"addon_group_name",
}

// Row is one fully-specified purchasable configuration. The fixed shape
// makes the always-27-fields invariant a type-level guarantee; nil means
// an empty cell.
type Row struct {
	RestaurantName    *string
	AreaID            *string
	AreaDisplayName   *string
	CategoryID        *string
	CategoryName      *string
	CategoryImageURL  *string
	CategoryTimings   *string
	CategoryRank      *string
	ItemID            *string
	ItemName          *string
	ItemDescription   *string
	Price             *string
	Rank              *string
	ImageURL          *string
	InStock           *string
	VariationItemID   *string
	VariationID       *string
	VariationName     *string
	VariationPrice    *string
	AddonName         *string
	AddonSelection    *string
	AddonSelectionMin *string
	AddonSelectionMax *string
	AddonPrice        *string
	AddonID           *string
	AddonGroupID      *string
	AddonGroupName    *string
}

// Cells returns the row's fields in canonical column order.
func (r Row) Cells() []*string {
	return []*string{
		r.RestaurantName,
		r.AreaID,
		r.AreaDisplayName,
		r.CategoryID,
		r.CategoryName,
		r.CategoryImageURL,
		r.CategoryTimings,
		r.CategoryRank,
		r.ItemID,
		r.ItemName,
		r.ItemDescription,
		r.Price,
		r.Rank,
		r.ImageURL,
		r.InStock,
		r.VariationItemID,
		r.VariationID,
		r.VariationName,
		r.VariationPrice,
		r.AddonName,
		r.AddonSelection,
		r.AddonSelectionMin,
		r.AddonSelectionMax,
		r.AddonPrice,
		r.AddonID,
		r.AddonGroupID,
		r.AddonGroupName,
	}
}

// Project applies the canonical column order to every row. It isolates
// the export contract from internal field construction, so a change to
// Row can never silently reorder the output columns.
func Project(rows []Row) [][]*string {
	out := make([][]*string, len(rows))
	for i, r := range rows {
		out[i] = r.Cells()
	}
	return out
}
