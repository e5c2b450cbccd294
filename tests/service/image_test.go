package servicetest

import (
	"strings"
	"testing"

	"pirex.GO/config"
	catalogService "pirex.GO/service/catalog"
)

func TestImageURL(t *testing.T) {
	config.LoadAppConfig()

	if got := catalogService.ImageURL(""); got != "" {
		t.Errorf("ImageURL(\"\") = %q, want empty", got)
	}

	got := catalogService.ImageURL("abc123.jpg")
	if !strings.HasSuffix(got, "/images/abc123.jpg") {
		t.Errorf("ImageURL = %q, want .../images/abc123.jpg", got)
	}
	if got != catalogService.ImageURL("abc123.jpg") {
		t.Error("ImageURL is not deterministic")
	}
}

func TestPurchaseLink(t *testing.T) {
	config.LoadAppConfig()

	got := catalogService.PurchaseLink("Alpha Laptop")
	if !strings.HasPrefix(got, "https://wa.me/") {
		t.Errorf("PurchaseLink = %q, want wa.me link", got)
	}
	if !strings.Contains(got, "text=I+want+to+buy+Alpha+Laptop") {
		t.Errorf("PurchaseLink = %q, missing encoded message", got)
	}
}
