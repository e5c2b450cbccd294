package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName       string
	Port          string
	Env           string
	Debug         bool
	ShopID        string
	StorageURL    string
	WhatsAppPhone string
	FeedURL       string
	PriceRangeMax float64
	// Add more fields as needed
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:       os.Getenv("APP_NAME"),
			Port:          os.Getenv("PORT"),
			Env:           os.Getenv("APP_ENV"),
			Debug:         os.Getenv("DEBUG") == "true",
			ShopID:        envOr("SHOP_ID", "pirex"),
			StorageURL:    envOr("STORAGE_URL", "https://storage.pirexcomputers.co.zw/object/public"),
			WhatsAppPhone: envOr("WHATSAPP_PHONE", "263772572037"),
			FeedURL:       envOr("BLOG_FEED_URL", "https://api.rss2json.com/v1/api.json?rss_url=https://pirexcomputers.substack.com/feed"),
			PriceRangeMax: envFloatOr("PRICE_RANGE_MAX", 4000),
		}
	})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envFloatOr parses a float env var. PriceRangeMax is the shop price slider
// ceiling, a display default rather than a cap on valid catalog prices.
func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
