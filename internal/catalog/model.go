package catalog

// Catalog is the structured menu returned by catalog inference.
// Collections may be empty; ids may be null. The flattener treats every
// field as opaque text.
type Catalog struct {
	Restaurant  Restaurant   `json:"restaurant"`
	Areas       []Area       `json:"areas"`
	Categories  []Category   `json:"categories"`
	Items       []Item       `json:"items"`
	AddonGroups []AddonGroup `json:"addongroups"`
	AuditLog    []AuditEntry `json:"audit_log"`
}

type Restaurant struct {
	Name        Text `json:"restaurantname"`
	Address     Text `json:"address"`
	Contact     Text `json:"contact"`
	City        Text `json:"city"`
	State       Text `json:"state"`
	SourceImage Text `json:"source_image"`
}

type Area struct {
	RestaurantAreaID Text `json:"restaurantareaid"`
	AreaID           Text `json:"areaid"`
	DisplayName      Text `json:"displayname"`
	Active           Text `json:"active"`
	Rank             Text `json:"rank"`
}

type Category struct {
	CategoryID       Text `json:"categoryid"`
	Name             Text `json:"categoryname"`
	Active           Text `json:"active"`
	Rank             Text `json:"categoryrank"`
	ImageURL         Text `json:"category_image_url"`
	ParentCategoryID Text `json:"parent_category_id"`
	Timings          Text `json:"categorytimings"`
}

type Item struct {
	ItemID         Text        `json:"itemid"`
	Name           Text        `json:"itemname"`
	Description    Text        `json:"itemdescription"`
	CategoryID     Text        `json:"item_categoryid"`
	Price          Text        `json:"price"`
	Rank           Text        `json:"itemrank"`
	InStock        Text        `json:"instock"`
	ImageURL       Text        `json:"item_image_url"`
	AttributeID    Text        `json:"item_attributeid"`
	AllowVariation Text        `json:"itemallowvariation"`
	AllowAddon     Text        `json:"itemallowaddon"`
	Active         Text        `json:"active"`
	Variations     []Variation `json:"variation"`
	AddonRefs      []AddonRef  `json:"addon"`
}

// Variation exists only nested inside an Item.
type Variation struct {
	VariationItemID Text `json:"variationitemid"`
	VariationID     Text `json:"variationid"`
	Name            Text `json:"variation_name"`
	Price           Text `json:"variation_price"`
	Rank            Text `json:"variationrank"`
}

// AddonRef points an Item at an AddonGroup by id and carries the
// item-specific selection constraints. The addon items themselves live
// on the referenced group.
type AddonRef struct {
	GroupID      Text `json:"addon_group_id"`
	Selection    Text `json:"addon_item_selection"`
	SelectionMin Text `json:"addon_item_selection_min"`
	SelectionMax Text `json:"addon_item_selection_max"`
}

type AddonGroup struct {
	GroupID      Text        `json:"addongroupid"`
	Name         Text        `json:"addongroup_name"`
	RestaurantID Text        `json:"addongroup_restaurantid"`
	Rank         Text        `json:"addongroup_rank"`
	Active       Text        `json:"active"`
	MinQty       Text        `json:"min_qty"`
	MaxQty       Text        `json:"max_qty"`
	Items        []AddonItem `json:"addongroupitems"`
}

// AddonItem may nest under another addon via ParentAddonID; the
// flattener treats that reference as opaque and never recurses.
type AddonItem struct {
	AddonItemID   Text `json:"addonitemid"`
	Name          Text `json:"addonitem_name"`
	Price         Text `json:"addonitem_price"`
	Active        Text `json:"active"`
	Attributes    Text `json:"attributes"`
	Rank          Text `json:"addonitem_rank"`
	ParentAddonID Text `json:"parent_addon_id"`
	Status        Text `json:"status"`
}

type AuditEntry struct {
	Timestamp string `json:"timestamp"`
	Stage     string `json:"stage"`
	Message   string `json:"message"`
}
