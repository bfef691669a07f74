package core

// derive.go holds the per-row field derivations. All of them are pure,
// total functions over a normalized row: they never fail, and absent
// optional fields render the "N/A" placeholder downstream.

import (
	"math"
	"strconv"
	"strings"
)

// gramsPerPound converts the spreadsheet's pound weights to Shopify's
// gram-denominated variant weight.
const gramsPerPound = 453.592

// Derived holds the computed fields for one source row.
type Derived struct {
	DisplayName   string // pipe segments rejoined with " - "
	Handle        string // SKU with spaces removed
	Fragrance     string // first delimiter-separated segment, trimmed
	SmellsLikeTag string // fragrance lowercased, spaces -> hyphens
	SKUSuffix     string // last 6 characters of the SKU
	VariantGrams  int    // End Weight (lbs) in grams, rounded
}

// Derive computes all derived fields for one row.
func Derive(r *SourceRow) Derived {
	fragrance := Fragrance(r.Description)
	return Derived{
		DisplayName:   DisplayName(r.Description),
		Handle:        Handle(r.SKU),
		Fragrance:     fragrance,
		SmellsLikeTag: SmellsLikeTag(fragrance),
		SKUSuffix:     SKUSuffix(r.SKU),
		VariantGrams:  VariantGrams(r.EndWeightLb),
	}
}

// DisplayName standardizes a "Fragrance | Vessel | ..." description for
// NetSuite: split on "|", trim each segment, rejoin with " - ". A
// description with no pipe passes through trimmed, unchanged.
func DisplayName(description string) string {
	parts := strings.Split(description, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, " - ")
}

// Fragrance extracts the first segment of the description. Pipes are
// substituted with dashes before splitting, so "Vanilla | Jar" and
// "Vanilla - Jar" both yield "Vanilla". This re-parse is independent of
// DisplayName because the delimiter substitution differs.
func Fragrance(description string) string {
	first, _, _ := strings.Cut(strings.ReplaceAll(description, "|", "-"), "-")
	return strings.TrimSpace(first)
}

// SmellsLikeTag turns a fragrance name into its Shopify tag form:
// spaces to hyphens, lowercased.
func SmellsLikeTag(fragrance string) string {
	return strings.ToLower(strings.ReplaceAll(fragrance, " ", "-"))
}

// SKUSuffix returns the last 6 characters of the SKU, or the whole SKU
// when shorter. The SKU is opaque; it is never parsed beyond this.
func SKUSuffix(sku string) string {
	r := []rune(sku)
	if len(r) <= 6 {
		return sku
	}
	return string(r[len(r)-6:])
}

// Handle returns the Shopify handle: the SKU with all spaces removed.
func Handle(sku string) string {
	return strings.ReplaceAll(sku, " ", "")
}

// VariantGrams converts a pound weight to whole grams. Ties round half
// away from zero; the rule only has to be consistent, since it decides
// the exact output bytes.
func VariantGrams(lbs float64) int {
	return int(math.Round(lbs * gramsPerPound))
}

// formatNumber renders a numeric cell in minimal decimal form: "3" not
// "3.0", "1.5", "24.99".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
