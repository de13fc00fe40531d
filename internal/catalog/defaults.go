package catalog

// Default codes applied when inference leaves a field absent. The
// flattener relies on these being in place; it never fills them itself.
const (
	DefaultInStock      = "2" // in stock
	DefaultActive       = "1" // active
	DefaultAttributeID  = "1" // dietary attribute code
	DefaultSelectionMin = "0"
	DefaultSelectionMax = "2"
)

// Normalize fills documented defaults and replaces nil collections with
// empty ones so downstream stages never see a missing substructure.
// sourceImage records which image produced this catalog.
func Normalize(c *Catalog, sourceImage string) {
	c.Restaurant.Name = c.Restaurant.Name.Or("Unknown")
	if sourceImage != "" && !c.Restaurant.SourceImage.Valid {
		c.Restaurant.SourceImage = T(sourceImage)
	}

	if c.Areas == nil {
		c.Areas = []Area{}
	}
	if c.Categories == nil {
		c.Categories = []Category{}
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	if c.AddonGroups == nil {
		c.AddonGroups = []AddonGroup{}
	}
	if c.AuditLog == nil {
		c.AuditLog = []AuditEntry{}
	}

	for i := range c.Categories {
		c.Categories[i].Active = c.Categories[i].Active.Or(DefaultActive)
	}

	for i := range c.Items {
		item := &c.Items[i]
		item.Description = item.Description.Or("")
		item.InStock = item.InStock.Or(DefaultInStock)
		item.AttributeID = item.AttributeID.Or(DefaultAttributeID)
		item.Active = item.Active.Or(DefaultActive)
		if item.Variations == nil {
			item.Variations = []Variation{}
		}
		if item.AddonRefs == nil {
			item.AddonRefs = []AddonRef{}
		}
		for j := range item.AddonRefs {
			ref := &item.AddonRefs[j]
			ref.SelectionMin = ref.SelectionMin.Or(DefaultSelectionMin)
			ref.SelectionMax = ref.SelectionMax.Or(DefaultSelectionMax)
		}
	}

	for i := range c.AddonGroups {
		group := &c.AddonGroups[i]
		group.Active = group.Active.Or(DefaultActive)
		if group.Items == nil {
			group.Items = []AddonItem{}
		}
		for j := range group.Items {
			group.Items[j].Active = group.Items[j].Active.Or(DefaultActive)
		}
	}
}
