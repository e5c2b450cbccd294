package html

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"pirex.GO/config"
	parts "pirex.GO/html/parts"
	catalogService "pirex.GO/service/catalog"
	feedService "pirex.GO/service/feed"
)

// RegisterStorefrontRoutes registers the public HTML pages. Each page holds
// its catalog data in a State so a burst of reloads cannot install stale
// results over fresh ones.
func RegisterStorefrontRoutes(e *echo.Echo, db *gorm.DB) {
	loader := catalogService.NewLoader(db, config.AppConfig.ShopID)
	shopState := catalogService.NewState(loader, catalogService.ViewShop)
	featuredState := catalogService.NewState(loader, catalogService.ViewFeatured)
	blog := feedService.NewService()

	css, _ := parts.GetCriticalCSS()

	base := func(c echo.Context, title string) map[string]interface{} {
		return map[string]interface{}{
			"Title":       title,
			"AppName":     config.AppConfig.AppName,
			"CriticalCSS": css,
			"Year":        time.Now().Year(),
		}
	}

	e.GET("/", func(c echo.Context) error {
		data := base(c, "Home")
		res, err := featuredState.Get(c.Request().Context())
		if err != nil {
			// Featured strip degrades to nothing; the home page still renders.
			log.Println("featured load failed:", err)
			data["Products"] = []productView{}
			return c.Render(http.StatusOK, "home.html", data)
		}
		data["Products"] = productViews(res.Products)
		data["Sample"] = res.Sample
		return c.Render(http.StatusOK, "home.html", data)
	})

	e.GET("/shop", func(c echo.Context) error {
		start := time.Now()
		data := base(c, "Shop")

		res, err := shopState.Get(c.Request().Context())
		if c.QueryParam("reload") == "1" {
			res, err = shopState.Reload(c.Request().Context())
		}
		if err != nil {
			// Category failure is fatal to this view; render the retry state.
			data["Error"] = "Failed to fetch categories"
			return c.Render(http.StatusOK, "shop.html", data)
		}

		filter := filterFromQuery(c)
		products := catalogService.Apply(res.Products, filter)

		data["Categories"] = res.Categories
		data["Products"] = productViews(products)
		data["Filter"] = filter
		data["PriceRangeMax"] = config.AppConfig.PriceRangeMax
		data["Degraded"] = res.Degraded
		data["Sample"] = res.Sample
		log.Printf("shop render took %s", time.Since(start))
		return c.Render(http.StatusOK, "shop.html", data)
	})

	e.GET("/about", func(c echo.Context) error {
		return c.Render(http.StatusOK, "about.html", base(c, "About"))
	})

	e.GET("/contact", func(c echo.Context) error {
		return c.Render(http.StatusOK, "contact.html", base(c, "Contact"))
	})

	e.GET("/blog", func(c echo.Context) error {
		data := base(c, "Blog")
		posts, err := blog.Posts()
		if err != nil {
			log.Println("blog feed failed:", err)
			data["Error"] = "Failed to fetch blog feed"
			return c.Render(http.StatusOK, "blog.html", data)
		}
		data["Posts"] = posts
		return c.Render(http.StatusOK, "blog.html", data)
	})
}

// productView decorates a Product with its purchase-intent link for templates.
type productView struct {
	catalogService.Product
	PurchaseLink string
}

func productViews(products []catalogService.Product) []productView {
	out := make([]productView, len(products))
	for i, p := range products {
		out[i] = productView{
			Product:      p,
			PurchaseLink: catalogService.PurchaseLink(p.Name),
		}
	}
	return out
}

func filterFromQuery(c echo.Context) catalogService.Filter {
	f := catalogService.Filter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		PriceMin: 0,
		PriceMax: config.AppConfig.PriceRangeMax,
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
