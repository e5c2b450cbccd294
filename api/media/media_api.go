package media

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"pirex.GO/api"
	mediaService "pirex.GO/service/media"
)

func init() {
	api.RegisterRoute(RegisterMediaRoutes)
}

// RegisterMediaRoutes mounts the public thumbnail endpoint. Failures are
// per-image: a 404 tells the storefront to render the category glyph.
func RegisterMediaRoutes(e *echo.Echo, db *gorm.DB) {
	t := mediaService.NewThumbnailer()

	e.GET("/media/:id", func(c echo.Context) error {
		opts := mediaService.Options{
			Format: c.QueryParam("format"),
		}
		if v := c.QueryParam("w"); v != "" {
			if w, err := strconv.Atoi(v); err == nil && w > 0 {
				opts.Width = w
			}
		}
		if v := c.QueryParam("h"); v != "" {
			if h, err := strconv.Atoi(v); err == nil && h > 0 {
				opts.Height = h
			}
		}
		if v := c.QueryParam("q"); v != "" {
			if q, err := strconv.Atoi(v); err == nil {
				opts.Quality = q
			}
		}

		body, contentType, err := t.Render(c.Param("id"), opts)
		if err != nil {
			log.Printf("media %s: %v", c.Param("id"), err)
			return c.NoContent(http.StatusNotFound)
		}
		c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		return c.Blob(http.StatusOK, contentType, body)
	})
}
