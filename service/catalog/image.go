package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"pirex.GO/config"
)

// storageBucket is the public object bucket holding product images.
const storageBucket = "images"

// ImageURL maps an opaque image identifier to its public URL. Returns ""
// for a missing identifier. Pure string construction, no network call.
func ImageURL(imageID string) string {
	if imageID == "" {
		return ""
	}
	base := ""
	if config.AppConfig != nil {
		base = config.AppConfig.StorageURL
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), storageBucket, imageID)
}

// PurchaseLink builds the outbound purchase-intent deep link: a chat with the
// storefront's number prefilled with the product name.
func PurchaseLink(productName string) string {
	phone := ""
	if config.AppConfig != nil {
		phone = config.AppConfig.WhatsAppPhone
	}
	msg := url.QueryEscape("I want to buy " + productName)
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, msg)
}

// glyphRule pairs a keyword with the glyph shown when a category label
// contains it. Rules are an ordered slice, not a map: some keywords overlap
// and the first match must win deterministically.
type glyphRule struct {
	keyword string
	glyph   string
}

var glyphRules = []glyphRule{
	{"laptop", "💻"},
	{"computer", "💻"},
	{"phone", "📱"},
	{"mobile", "📱"},
	{"tablet", "📱"},
	{"watch", "⌚"},
	{"headphone", "🎧"},
	{"audio", "🎧"},
	{"camera", "📷"},
	{"printer", "🖨️"},
	{"projector", "📽️"},
	{"monitor", "🖥️"},
	{"display", "🖥️"},
	{"keyboard", "⌨️"},
	{"mouse", "🖱️"},
	{"speaker", "🔊"},
	{"gaming", "🎮"},
	{"tv", "📺"},
	{"television", "📺"},
}

const defaultGlyph = "📦"

// CategoryGlyph resolves a category label to a display glyph by
// case-insensitive substring match, first rule wins.
func CategoryGlyph(label string) string {
	lower := strings.ToLower(label)
	for _, r := range glyphRules {
		if strings.Contains(lower, r.keyword) {
			return r.glyph
		}
	}
	return defaultGlyph
}
