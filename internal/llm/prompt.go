package llm

// BuildCatalogPrompt wraps OCR text in the extraction instructions. The
// schema below is the inference contract: field names must match the
// catalog decoder exactly.
func BuildCatalogPrompt(ocrText string) string {
	return `
You are an expert at parsing restaurant menu text extracted from images using OCR.
Convert the OCR text into STRICT JSON describing the menu catalog.

Rules:
- Output MUST be valid JSON only. No explanations, no markdown, no comments.
- Output MUST start with { and end with }.
- Follow the exact schema below. Use null for unknown ids.
- Extract prices as numbers, stripped of currency symbols.
- Handle OCR errors gracefully by making reasonable inferences.
- If a field is missing, use the default values listed.

Required JSON schema:
{
  "restaurant": {
    "restaurantname": "string or Unknown",
    "address": null,
    "contact": null,
    "city": null,
    "state": null,
    "source_image": null
  },
  "areas": [
    {"areaid": null, "displayname": "string", "active": "1", "rank": null}
  ],
  "categories": [
    {
      "categoryid": null,
      "categoryname": "string",
      "active": "1",
      "categoryrank": null,
      "category_image_url": null,
      "parent_category_id": null,
      "categorytimings": null
    }
  ],
  "items": [
    {
      "itemid": null,
      "itemname": "string",
      "itemdescription": "",
      "item_categoryid": null,
      "price": number or null,
      "itemrank": null,
      "instock": "2",
      "item_image_url": null,
      "item_attributeid": "1",
      "itemallowvariation": "0",
      "itemallowaddon": "0",
      "active": "1",
      "variation": [
        {
          "variationitemid": null,
          "variationid": null,
          "variation_name": "string",
          "variation_price": number,
          "variationrank": null
        }
      ],
      "addon": [
        {
          "addon_group_id": null,
          "addon_item_selection": "1",
          "addon_item_selection_min": "0",
          "addon_item_selection_max": "2"
        }
      ]
    }
  ],
  "addongroups": [
    {
      "addongroupid": null,
      "addongroup_name": "string",
      "addongroup_restaurantid": null,
      "addongroup_rank": null,
      "active": "1",
      "min_qty": "0",
      "max_qty": "2",
      "addongroupitems": [
        {
          "addonitemid": null,
          "addonitem_name": "string",
          "addonitem_price": number,
          "active": "1",
          "attributes": "1",
          "addonitem_rank": null,
          "parent_addon_id": null,
          "status": "1"
        }
      ]
    }
  ],
  "audit_log": []
}

Defaults when information is missing:
- instock: "2"
- active: "1"
- item_attributeid: "1"
- addon_item_selection_min: "0"
- addon_item_selection_max: "2"
- price: null
- itemdescription: ""

Parsing hints:
- "Chicken Teriyaki 259/-" is an item with price 259.
- "Add extra cheese 40/-" is an addon item with price 40.
- "CALZONE MENU" is a category name.
- A line under an item describing it is the item description.
- "Regular / Large 100 / 150" means two variations of one item.

If you cannot extract anything, return:
{"restaurant":{"restaurantname":"Unknown"},"areas":[],"categories":[],"items":[],"addongroups":[],"audit_log":[]}

OCR TEXT:
` + ocrText
}
