package core

// mappers.go assembles one output row per target table from a
// normalized row plus its derived fields.
//
// The fixed literals (account codes, location, costing method, flag
// strings) are static business configuration consumed by the NetSuite
// and Shopify import tooling. They must be reproduced byte-for-byte or
// the downstream saved imports reject the file.

import (
	"fmt"
	"strings"
)

// notAvailable is rendered in the Shopify body for optional columns
// that are absent from the upload entirely.
const notAvailable = "N/A"

// NetsuiteItemColumns is the NetSuite item import schema, in file
// column order.
var NetsuiteItemColumns = []string{
	"externalid", "itemid", "Display Name", "unitstype", "subsidiary",
	"includechildren", "location", "track landed cost", "costingmethod",
	"costcategory", "atpmethod", "autopreferredstocklevel",
	"isspecialorderitem", "usebins", "cogsaccount", "incomeaccount",
	"assetaccount", "taxSchedule", "isinactive", "Price", "Weight",
}

// ShopifyProductColumns is the full Shopify product import schema.
// Only a subset is populated; the rest stay blank but must be present
// for the importer to accept the file.
var ShopifyProductColumns = []string{
	"Handle", "Title", "Body (HTML)", "Vendor", "Tags", "Published",
	"Option1 Name", "Option1 Value", "Option2 Name", "Option2 Value",
	"Option3 Name", "Option3 Value", "Variant SKU", "Variant Grams",
	"Variant Inventory Tracker", "Variant Inventory Qty",
	"Variant Inventory Policy", "Variant Fulfillment Service",
	"Variant Price", "Variant Compare At Price",
	"Variant Requires Shipping", "Variant Taxable", "Variant Barcode",
	"Image Src", "Image Position", "Image Alt Text", "Gift Card",
	"SEO Title", "SEO Description",
	"Google Shopping / Google Product Category",
	"Google Shopping / Gender", "Google Shopping / Age Group",
	"Google Shopping / MPN", "Google Shopping / AdWords Grouping",
	"Google Shopping / AdWords Labels", "Google Shopping / Condition",
	"Google Shopping / Custom Product",
	"Google Shopping / Custom Label 0", "Google Shopping / Custom Label 1",
	"Google Shopping / Custom Label 2", "Google Shopping / Custom Label 3",
	"Google Shopping / Custom Label 4", "Variant Image",
	"Variant Weight Unit", "Variant Tax Code", "Cost per item", "Status",
	"Standard Product Type", "Custom Product Type",
}

// InventoryAdjustmentColumns is the NetSuite inventory adjustment
// import schema, in file column order.
var InventoryAdjustmentColumns = []string{
	"External ID", "Full name", "Account", "Class", "Department",
	"memo", "line qty adj", "Line adj loc", "Line memo", "itemId",
}

// Column position lookups, built once. Mapper code addresses cells by
// column name so a schema reorder cannot silently shift values.
var (
	netsuiteItemIndex        = columnIndex(NetsuiteItemColumns)
	shopifyProductIndex      = columnIndex(ShopifyProductColumns)
	inventoryAdjustmentIndex = columnIndex(InventoryAdjustmentColumns)
)

func columnIndex(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return idx
}

// set assigns a named cell in an output row. Panics on an unknown
// column; that is a programming error, caught at the Convert boundary.
func set(row []string, idx map[string]int, col, val string) {
	pos, ok := idx[col]
	if !ok {
		panic(fmt.Sprintf("unknown output column %q", col))
	}
	row[pos] = val
}

// netsuiteItemRow maps one source row to the NetSuite item import.
// The description cell uses the pipe-normalized display name, and the
// weight stays in pounds.
func netsuiteItemRow(r *SourceRow, d Derived) []string {
	row := make([]string, len(NetsuiteItemColumns))
	set(row, netsuiteItemIndex, "externalid", r.SKU)
	set(row, netsuiteItemIndex, "itemid", r.SKU)
	set(row, netsuiteItemIndex, "Display Name", d.DisplayName)
	set(row, netsuiteItemIndex, "unitstype", "Quantity")
	set(row, netsuiteItemIndex, "location", "ACC 1611")
	set(row, netsuiteItemIndex, "track landed cost", "FALSE")
	set(row, netsuiteItemIndex, "costingmethod", "AVERAGE")
	set(row, netsuiteItemIndex, "costcategory", "Default")
	set(row, netsuiteItemIndex, "atpmethod", "Discrete ATP")
	set(row, netsuiteItemIndex, "autopreferredstocklevel", "TRUE")
	set(row, netsuiteItemIndex, "isspecialorderitem", "FALSE")
	set(row, netsuiteItemIndex, "usebins", "FALSE")
	set(row, netsuiteItemIndex, "cogsaccount", "318")
	set(row, netsuiteItemIndex, "incomeaccount", "429")
	set(row, netsuiteItemIndex, "assetaccount", "227")
	set(row, netsuiteItemIndex, "taxSchedule", "Non-taxable")
	set(row, netsuiteItemIndex, "isinactive", "FALSE")
	set(row, netsuiteItemIndex, "Price", formatNumber(r.RetailPrice))
	set(row, netsuiteItemIndex, "Weight", formatNumber(r.EndWeightLb))
	return row
}

// shopifyProductRow maps one source row to the Shopify product import.
// Unlike the NetSuite mapper, the title keeps the original, unmodified
// description; the pipe is wanted on the storefront.
func shopifyProductRow(r *SourceRow, d Derived, in *Input) []string {
	row := make([]string, len(ShopifyProductColumns))
	set(row, shopifyProductIndex, "Handle", d.Handle)
	set(row, shopifyProductIndex, "Title", r.Description)
	set(row, shopifyProductIndex, "Body (HTML)", shopifyBodyHTML(r, in))
	set(row, shopifyProductIndex, "Tags", shopifyTags(d))
	set(row, shopifyProductIndex, "Published", "FALSE")
	set(row, shopifyProductIndex, "Variant SKU", r.SKU)
	set(row, shopifyProductIndex, "Variant Grams", fmt.Sprintf("%d", d.VariantGrams))
	set(row, shopifyProductIndex, "Variant Inventory Tracker", "shopify")
	set(row, shopifyProductIndex, "Variant Inventory Policy", "deny")
	set(row, shopifyProductIndex, "Variant Fulfillment Service", "manual")
	set(row, shopifyProductIndex, "Variant Price", formatNumber(r.RetailPrice))
	set(row, shopifyProductIndex, "Variant Requires Shipping", "TRUE")
	set(row, shopifyProductIndex, "Variant Taxable", "TRUE")
	set(row, shopifyProductIndex, "Gift Card", "FALSE")
	set(row, shopifyProductIndex, "Variant Weight Unit", "lb")
	set(row, shopifyProductIndex, "Status", "active")
	return row
}

// inventoryAdjustmentRow maps one source row to the NetSuite inventory
// adjustment import. External ID, memo and line memo all carry the same
// "Antique Restock <suffix>" tag so the three fields reconcile.
func inventoryAdjustmentRow(r *SourceRow, d Derived) []string {
	restock := "Antique Restock " + d.SKUSuffix
	row := make([]string, len(InventoryAdjustmentColumns))
	set(row, inventoryAdjustmentIndex, "External ID", restock)
	set(row, inventoryAdjustmentIndex, "Full name", fmt.Sprintf("%s %s", r.SKU, d.DisplayName))
	set(row, inventoryAdjustmentIndex, "Account", "325")
	set(row, inventoryAdjustmentIndex, "Class", "Operations : Production")
	set(row, inventoryAdjustmentIndex, "Department", "Retail")
	set(row, inventoryAdjustmentIndex, "memo", restock)
	set(row, inventoryAdjustmentIndex, "line qty adj", formatNumber(r.Quantity))
	set(row, inventoryAdjustmentIndex, "Line adj loc", "ACC 1611")
	set(row, inventoryAdjustmentIndex, "Line memo", restock)
	set(row, inventoryAdjustmentIndex, "itemId", r.SKU)
	return row
}

// shopifyTags builds the comma-joined tag list: fixed category tags,
// the SKU-suffix tag, the smells-like tag, then the fragrance itself.
// The space before the fragrance is load-bearing; the storefront tag
// filters were built against it.
func shopifyTags(d Derived) string {
	return fmt.Sprintf("_tab2_antique-restock-101,antique%s,_tab1_%s-smells-like, %s",
		d.SKUSuffix, d.SmellsLikeTag, d.Fragrance)
}

// shopifyBodyHTML renders the fixed three-line product body. Optional
// columns absent from the upload render as "N/A"; present-but-blank
// cells render the coerced 0.
func shopifyBodyHTML(r *SourceRow, in *Input) string {
	burn := notAvailable
	if in.HasBurnTime {
		burn = formatNumber(r.BurnTime)
	}
	height := notAvailable
	if in.HasHeight {
		height = formatNumber(r.Height)
	}
	width := notAvailable
	if in.HasWidth {
		width = formatNumber(r.Width)
	}

	lines := []string{
		fmt.Sprintf(`<p data-mce-fragment="1">Approximate Burn Time: %s hours</p>`, burn),
		fmt.Sprintf(`<p data-mce-fragment="1">Weight: %s oz</p>`, formatNumber(r.EndWeightOz)),
		fmt.Sprintf(`<p data-mce-fragment="1">Dimensions: %s" Height x %s" Width</p>`, height, width),
	}
	return strings.Join(lines, "\n")
}
