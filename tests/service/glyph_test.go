package servicetest

import (
	"testing"

	catalogService "pirex.GO/service/catalog"
)

func TestCategoryGlyph_KnownCategories(t *testing.T) {
	cases := map[string]string{
		"Laptops":          "💻",
		"Desktop Computers": "💻",
		"Mobile Phones":    "📱",
		"Tablets":          "📱",
		"Smart Watches":    "⌚",
		"Audio":            "🎧",
		"Cameras":          "📷",
		"Printers":         "🖨️",
		"Monitors":         "🖥️",
		"Keyboards":        "⌨️",
		"Gaming":           "🎮",
		"Televisions":      "📺",
	}
	for label, want := range cases {
		if got := catalogService.CategoryGlyph(label); got != want {
			t.Errorf("CategoryGlyph(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestCategoryGlyph_Default(t *testing.T) {
	if got := catalogService.CategoryGlyph("General"); got != "📦" {
		t.Errorf("default glyph = %q, want 📦", got)
	}
	if got := catalogService.CategoryGlyph(""); got != "📦" {
		t.Errorf("empty label glyph = %q, want 📦", got)
	}
}

func TestCategoryGlyph_CaseInsensitive(t *testing.T) {
	if catalogService.CategoryGlyph("LAPTOPS") != catalogService.CategoryGlyph("laptops") {
		t.Error("glyph resolution should be case-insensitive")
	}
}

// Rules are an ordered list: a label matching several keywords resolves to
// the earliest rule every time.
func TestCategoryGlyph_FirstMatchWins(t *testing.T) {
	got := catalogService.CategoryGlyph("Gaming Laptops")
	if got != "💻" {
		t.Errorf("Gaming Laptops glyph = %q, want 💻 (laptop rule precedes gaming)", got)
	}
	// deterministic across calls
	for i := 0; i < 5; i++ {
		if catalogService.CategoryGlyph("Gaming Laptops") != got {
			t.Fatal("glyph resolution is not deterministic")
		}
	}
}
