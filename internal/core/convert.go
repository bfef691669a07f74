package core

// convert.go is the single entry point for one conversion run:
// normalize, then one pass over the rows feeding the three mappers.
//
// The run is atomic from the caller's perspective. Validation failures
// abort before any output exists; anything that blows up mid-loop is
// recovered here, surfaced as a *ProcessingError, and the partially
// built tables are discarded.

import (
	"fmt"
	"time"
)

// Convert runs the full transform over one upload and returns the three
// completed output tables. The returned Bundle is never partial.
func Convert(header []string, rows [][]string) (*Bundle, error) {
	in, err := Normalize(header, rows)
	if err != nil {
		return nil, err
	}
	return ConvertInput(in)
}

// ConvertInput transforms an already-normalized input. Exposed
// separately so callers that build Input programmatically (tests,
// future batch tooling) skip re-normalization.
func ConvertInput(in *Input) (bundle *Bundle, err error) {
	row := 0
	defer func() {
		if r := recover(); r != nil {
			bundle = nil
			err = &ProcessingError{Row: row, Cause: fmt.Errorf("%v", r)}
		}
	}()

	bundle = &Bundle{
		NetsuiteItems: Table{
			Name:       "NetSuite Item Import",
			FilePrefix: "netsuite_import",
			Columns:    NetsuiteItemColumns,
			Rows:       make([][]string, 0, len(in.Rows)),
		},
		ShopifyProducts: Table{
			Name:       "Shopify Product Import",
			FilePrefix: "shopify_import",
			Columns:    ShopifyProductColumns,
			Rows:       make([][]string, 0, len(in.Rows)),
		},
		InventoryAdjustments: Table{
			Name:       "NetSuite Inventory Adjustment",
			FilePrefix: "inventory_adjustment",
			Columns:    InventoryAdjustmentColumns,
			Rows:       make([][]string, 0, len(in.Rows)),
		},
		RowCount:    len(in.Rows),
		GeneratedAt: time.Now(),
	}

	// Each iteration reads only its own row and appends its own output
	// slots, so the 1:1 row correspondence holds by construction.
	for i := range in.Rows {
		row = i + 1
		r := &in.Rows[i]
		d := Derive(r)

		bundle.NetsuiteItems.Rows = append(bundle.NetsuiteItems.Rows, netsuiteItemRow(r, d))
		bundle.ShopifyProducts.Rows = append(bundle.ShopifyProducts.Rows, shopifyProductRow(r, d, in))
		bundle.InventoryAdjustments.Rows = append(bundle.InventoryAdjustments.Rows, inventoryAdjustmentRow(r, d))
	}

	return bundle, nil
}
