package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Source column names, matched exactly after header whitespace is
// stripped. The upstream spreadsheet is hand-edited, so these are the
// only contract with it.
const (
	ColSKU          = "SKU"
	ColDescription  = "Fragrance - Vessel Description"
	ColRetailPrice  = "Retail Price"
	ColEndWeightLbs = "End Weight (lbs)"
	ColQuantity     = "Quantity"
	ColBurnTime     = "Burn Time"
	ColEndWeight    = "End Weight"
	ColHeight       = "Height"
	ColWidth        = "Width"
)

// RequiredColumns must all be present in the upload header.
var RequiredColumns = []string{
	ColSKU,
	ColDescription,
	ColRetailPrice,
	ColEndWeightLbs,
	ColQuantity,
}

// SourceRow is one normalized input record. Numeric fields are never
// NaN or negative-by-parse-failure; coercion has already run.
type SourceRow struct {
	SKU         string
	Description string
	RetailPrice float64
	EndWeightLb float64
	Quantity    float64

	// Optional columns. The Has* flags on Input say whether the
	// column existed in the upload at all.
	BurnTime    float64
	EndWeightOz float64 // synthesized from EndWeightLb when absent
	Height      float64
	Width       float64
}

// Input is the canonical in-memory shape of one upload.
type Input struct {
	Rows []SourceRow

	// Column presence for the optional fields. Presence is a property
	// of the table, not of individual rows.
	HasBurnTime bool
	HasHeight   bool
	HasWidth    bool
}

// Table is one ordered output table with a fixed column list.
type Table struct {
	// Name is the human-facing table name shown in the UI.
	Name string

	// FilePrefix is the export file stem; the full name is
	// FilePrefix + "_MM_DD_YY.csv".
	FilePrefix string

	Columns []string
	Rows    [][]string
}

// FileName returns the dated export file name, e.g.
// "netsuite_import_08_23_26.csv".
func (t *Table) FileName(now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", t.FilePrefix, now.Format("01_02_06"))
}

// WriteCSV serializes the table as UTF-8 CSV: header row first, then
// data rows, no index column.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Bundle holds the three output tables of one conversion run. A Bundle
// is only ever handed out complete; a failed run produces none.
type Bundle struct {
	NetsuiteItems        Table
	ShopifyProducts      Table
	InventoryAdjustments Table

	RowCount    int
	GeneratedAt time.Time
}

// Tables returns the three tables in their fixed display order.
func (b *Bundle) Tables() []*Table {
	return []*Table{&b.NetsuiteItems, &b.ShopifyProducts, &b.InventoryAdjustments}
}
