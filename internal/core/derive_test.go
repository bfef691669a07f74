package core

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"single pipe", "Vanilla Bean | Mason Jar", "Vanilla Bean - Mason Jar"},
		{"two pipes", "Vanilla | Amber Jar | Large", "Vanilla - Amber Jar - Large"},
		{"no pipe", "Plain Candle", "Plain Candle"},
		{"extra whitespace", "  Vanilla  |  Jar  ", "Vanilla - Jar"},
		{"empty", "", ""},
		{"pipe only", "|", " - "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.description); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestFragrance(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"pipe delimited", "Vanilla Bean | Mason Jar", "Vanilla Bean"},
		{"dash delimited", "Vanilla Bean - Mason Jar", "Vanilla Bean"},
		{"no delimiter", "Cedar", "Cedar"},
		{"empty", "", ""},
		{"leading delimiter", "- Jar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fragrance(tt.description); got != tt.want {
				t.Errorf("Fragrance(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestSmellsLikeTag(t *testing.T) {
	tests := []struct {
		fragrance string
		want      string
	}{
		{"Vanilla Bean", "vanilla-bean"},
		{"Cedar", "cedar"},
		{"Fresh Cut Grass", "fresh-cut-grass"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SmellsLikeTag(tt.fragrance); got != tt.want {
			t.Errorf("SmellsLikeTag(%q) = %q, want %q", tt.fragrance, got, tt.want)
		}
	}
}

func TestSKUSuffix(t *testing.T) {
	tests := []struct {
		sku  string
		want string
	}{
		{"ANT-123456", "123456"},
		{"123456", "123456"},
		{"1234", "1234"},
		{"", ""},
		{"ABCDEFG", "BCDEFG"},
	}

	for _, tt := range tests {
		if got := SKUSuffix(tt.sku); got != tt.want {
			t.Errorf("SKUSuffix(%q) = %q, want %q", tt.sku, got, tt.want)
		}
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		sku  string
		want string
	}{
		{"ANT 123 456", "ANT123456"},
		{"ANT-123456", "ANT-123456"},
		{" leading", "leading"},
	}

	for _, tt := range tests {
		if got := Handle(tt.sku); got != tt.want {
			t.Errorf("Handle(%q) = %q, want %q", tt.sku, got, tt.want)
		}
	}
}

func TestVariantGrams(t *testing.T) {
	tests := []struct {
		lbs  float64
		want int
	}{
		{0, 0},
		{1, 454},    // 453.592 rounds up
		{1.5, 680},  // 680.388 rounds down
		{2.2, 998},  // 997.9024 rounds up
		{0.001, 0},  // 0.453592 rounds down
		{0.0012, 1}, // 0.5443 rounds up
	}

	for _, tt := range tests {
		if got := VariantGrams(tt.lbs); got != tt.want {
			t.Errorf("VariantGrams(%v) = %d, want %d", tt.lbs, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{3, "3"},
		{1.5, "1.5"},
		{24.99, "24.99"},
		{0, "0"},
		{-2.5, "-2.5"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.v); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestDerive(t *testing.T) {
	r := &SourceRow{
		SKU:         "ANT-123456",
		Description: "Vanilla Bean | Mason Jar",
		EndWeightLb: 1.5,
	}

	d := Derive(r)

	if d.DisplayName != "Vanilla Bean - Mason Jar" {
		t.Errorf("DisplayName = %q", d.DisplayName)
	}
	if d.Handle != "ANT-123456" {
		t.Errorf("Handle = %q", d.Handle)
	}
	if d.Fragrance != "Vanilla Bean" {
		t.Errorf("Fragrance = %q", d.Fragrance)
	}
	if d.SmellsLikeTag != "vanilla-bean" {
		t.Errorf("SmellsLikeTag = %q", d.SmellsLikeTag)
	}
	if d.SKUSuffix != "123456" {
		t.Errorf("SKUSuffix = %q", d.SKUSuffix)
	}
	if d.VariantGrams != 680 {
		t.Errorf("VariantGrams = %d", d.VariantGrams)
	}
}
