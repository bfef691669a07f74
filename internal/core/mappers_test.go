package core

import (
	"strings"
	"testing"
)

func sampleRow() *SourceRow {
	return &SourceRow{
		SKU:         "ANT-123456",
		Description: "Vanilla Bean | Mason Jar",
		RetailPrice: 24.99,
		EndWeightLb: 1.5,
		Quantity:    3,
		EndWeightOz: 24,
	}
}

func cellValue(t *testing.T, row []string, idx map[string]int, col string) string {
	t.Helper()
	pos, ok := idx[col]
	if !ok {
		t.Fatalf("unknown column %q", col)
	}
	return row[pos]
}

func TestNetsuiteItemRow(t *testing.T) {
	r := sampleRow()
	row := netsuiteItemRow(r, Derive(r))

	if len(row) != len(NetsuiteItemColumns) {
		t.Fatalf("len(row) = %d, want %d", len(row), len(NetsuiteItemColumns))
	}

	want := map[string]string{
		"externalid":              "ANT-123456",
		"itemid":                  "ANT-123456",
		"Display Name":            "Vanilla Bean - Mason Jar",
		"unitstype":               "Quantity",
		"subsidiary":              "",
		"includechildren":         "",
		"location":                "ACC 1611",
		"track landed cost":       "FALSE",
		"costingmethod":           "AVERAGE",
		"costcategory":            "Default",
		"atpmethod":               "Discrete ATP",
		"autopreferredstocklevel": "TRUE",
		"isspecialorderitem":      "FALSE",
		"usebins":                 "FALSE",
		"cogsaccount":             "318",
		"incomeaccount":           "429",
		"assetaccount":            "227",
		"taxSchedule":             "Non-taxable",
		"isinactive":              "FALSE",
		"Price":                   "24.99",
		"Weight":                  "1.5",
	}
	for col, val := range want {
		if got := cellValue(t, row, netsuiteItemIndex, col); got != val {
			t.Errorf("%s = %q, want %q", col, got, val)
		}
	}
}

func TestShopifyProductRow(t *testing.T) {
	r := sampleRow()
	in := &Input{Rows: []SourceRow{*r}}
	row := shopifyProductRow(r, Derive(r), in)

	if len(row) != len(ShopifyProductColumns) {
		t.Fatalf("len(row) = %d, want %d", len(row), len(ShopifyProductColumns))
	}

	want := map[string]string{
		"Handle": "ANT-123456",
		// Title keeps the original description, pipe included.
		"Title":                       "Vanilla Bean | Mason Jar",
		"Tags":                        "_tab2_antique-restock-101,antique123456,_tab1_vanilla-bean-smells-like, Vanilla Bean",
		"Published":                   "FALSE",
		"Variant SKU":                 "ANT-123456",
		"Variant Grams":               "680",
		"Variant Inventory Tracker":   "shopify",
		"Variant Inventory Policy":    "deny",
		"Variant Fulfillment Service": "manual",
		"Variant Price":               "24.99",
		"Variant Requires Shipping":   "TRUE",
		"Variant Taxable":             "TRUE",
		"Gift Card":                   "FALSE",
		"Variant Weight Unit":         "lb",
		"Status":                      "active",
		"Vendor":                      "",
		"SEO Title":                   "",
	}
	for col, val := range want {
		if got := cellValue(t, row, shopifyProductIndex, col); got != val {
			t.Errorf("%s = %q, want %q", col, got, val)
		}
	}
}

func TestShopifyBodyHTML(t *testing.T) {
	t.Run("optional columns absent", func(t *testing.T) {
		r := sampleRow()
		in := &Input{Rows: []SourceRow{*r}}

		got := shopifyBodyHTML(r, in)
		want := `<p data-mce-fragment="1">Approximate Burn Time: N/A hours</p>` + "\n" +
			`<p data-mce-fragment="1">Weight: 24 oz</p>` + "\n" +
			`<p data-mce-fragment="1">Dimensions: N/A" Height x N/A" Width</p>`
		if got != want {
			t.Errorf("body = %q, want %q", got, want)
		}
	})

	t.Run("optional columns present", func(t *testing.T) {
		r := sampleRow()
		r.BurnTime = 40
		r.Height = 4.5
		r.Width = 3
		in := &Input{
			Rows:        []SourceRow{*r},
			HasBurnTime: true,
			HasHeight:   true,
			HasWidth:    true,
		}

		got := shopifyBodyHTML(r, in)
		want := `<p data-mce-fragment="1">Approximate Burn Time: 40 hours</p>` + "\n" +
			`<p data-mce-fragment="1">Weight: 24 oz</p>` + "\n" +
			`<p data-mce-fragment="1">Dimensions: 4.5" Height x 3" Width</p>`
		if got != want {
			t.Errorf("body = %q, want %q", got, want)
		}
	})

	t.Run("present but blank renders zero", func(t *testing.T) {
		r := sampleRow()
		in := &Input{Rows: []SourceRow{*r}, HasBurnTime: true}

		got := shopifyBodyHTML(r, in)
		if !strings.Contains(got, "Approximate Burn Time: 0 hours") {
			t.Errorf("body = %q, want burn time 0", got)
		}
	})
}

func TestInventoryAdjustmentRow(t *testing.T) {
	r := sampleRow()
	row := inventoryAdjustmentRow(r, Derive(r))

	if len(row) != len(InventoryAdjustmentColumns) {
		t.Fatalf("len(row) = %d, want %d", len(row), len(InventoryAdjustmentColumns))
	}

	want := map[string]string{
		"External ID":  "Antique Restock 123456",
		"Full name":    "ANT-123456 Vanilla Bean - Mason Jar",
		"Account":      "325",
		"Class":        "Operations : Production",
		"Department":   "Retail",
		"memo":         "Antique Restock 123456",
		"line qty adj": "3",
		"Line adj loc": "ACC 1611",
		"Line memo":    "Antique Restock 123456",
		"itemId":       "ANT-123456",
	}
	for col, val := range want {
		if got := cellValue(t, row, inventoryAdjustmentIndex, col); got != val {
			t.Errorf("%s = %q, want %q", col, got, val)
		}
	}
}

func TestOutputSchemas(t *testing.T) {
	if len(NetsuiteItemColumns) != 21 {
		t.Errorf("len(NetsuiteItemColumns) = %d, want 21", len(NetsuiteItemColumns))
	}
	if len(ShopifyProductColumns) != 49 {
		t.Errorf("len(ShopifyProductColumns) = %d, want 49", len(ShopifyProductColumns))
	}
	if len(InventoryAdjustmentColumns) != 10 {
		t.Errorf("len(InventoryAdjustmentColumns) = %d, want 10", len(InventoryAdjustmentColumns))
	}
}
