package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"pirex.GO/api"
	"pirex.GO/config"
	catalogService "pirex.GO/service/catalog"
	searchService "pirex.GO/service/search"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// catalogPayload is the JSON body for the full catalog endpoints.
type catalogPayload struct {
	Categories interface{}              `json:"categories"`
	Products   []catalogService.Product `json:"products"`
	Degraded   bool                     `json:"degraded"`
	Sample     bool                     `json:"sample"`
}

func RegisterCatalogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	loader := catalogService.NewLoader(db, config.AppConfig.ShopID)
	g := apiGroup.Group("/catalog")

	// GET /api/catalog – categories plus the full shop product list
	g.GET("", func(c echo.Context) error {
		return serveLoad(c, loader, catalogService.ViewShop)
	})

	// GET /api/catalog/featured – home page strip, limit 3
	g.GET("/featured", func(c echo.Context) error {
		return serveLoad(c, loader, catalogService.ViewFeatured)
	})

	// GET /api/catalog/products – filtered/sorted product list
	g.GET("/products", func(c echo.Context) error {
		filter := filterFromQuery(c)
		if key, ok := redisKey(c); ok {
			if cached := redisGet(c.Request().Context(), key); cached != nil {
				c.Response().Header().Set("X-Cache", "hit")
				return c.JSONBlob(http.StatusOK, cached)
			}
		}

		res, err := loader.Load(c.Request().Context(), catalogService.ViewShop)
		if err != nil {
			// Category fetch failure is the one fatal case: surface it and
			// let the client offer a retry.
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch categories"})
		}

		products := res.Products
		svc := searchService.GetService()
		if filter.Search != "" && svc.Enabled() {
			if hits, err := svc.Search(c.Request().Context(), config.AppConfig.ShopID, filter.Search, 0); err == nil {
				products = hits
				filter.Search = "" // already applied by the index
			} else {
				log.Printf("search backend failed, using filter engine: %v", err)
			}
		}

		out := catalogService.Apply(products, filter)
		body := catalogPayload{
			Categories: res.Categories,
			Products:   out,
			Degraded:   res.Degraded,
			Sample:     res.Sample,
		}
		if key, ok := redisKey(c); ok && !res.Degraded {
			redisSet(c.Request().Context(), key, body)
		}
		return c.JSON(http.StatusOK, body)
	})
}

func serveLoad(c echo.Context, loader *catalogService.Loader, view catalogService.View) error {
	res, err := loader.Load(c.Request().Context(), view)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(http.StatusOK, catalogPayload{
		Categories: res.Categories,
		Products:   res.Products,
		Degraded:   res.Degraded,
		Sample:     res.Sample,
	})
}

// filterFromQuery reads filter state from query params. Absent price bounds
// widen to [0, +inf); bounds are passed through unclamped.
func filterFromQuery(c echo.Context) catalogService.Filter {
	f := catalogService.Filter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		PriceMin: 0,
		PriceMax: maxPrice,
		Sort:     c.QueryParam("sort"),
	}
	if f.Category == "" {
		f.Category = catalogService.CategoryAll
	}
	if v := c.QueryParam("price_min"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMin = min
		}
	}
	if v := c.QueryParam("price_max"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMax = max
		}
	}
	return f
}

const maxPrice = 1e18 // effectively unbounded

// --- optional Redis response cache ---

const redisTTL = 5 * time.Minute

func redisKey(c echo.Context) (string, bool) {
	if config.RedisClient == nil {
		return "", false
	}
	return "catalog:products:" + c.QueryString(), true
}

func redisGet(ctx context.Context, key string) []byte {
	v, err := config.RedisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return v
}

func redisSet(ctx context.Context, key string, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		return
	}
	if err := config.RedisClient.Set(ctx, key, b, redisTTL).Err(); err != nil {
		log.Printf("redis set %s failed: %v", key, err)
	}
}
