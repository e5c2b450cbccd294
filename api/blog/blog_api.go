package blog

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"pirex.GO/api"
	feedService "pirex.GO/service/feed"
)

func init() {
	api.RegisterModule(RegisterBlogRoutes)
}

func RegisterBlogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := feedService.NewService()

	// GET /api/blog – cached newsletter feed
	apiGroup.GET("/blog", func(c echo.Context) error {
		posts, err := svc.Posts()
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "Failed to fetch blog feed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"posts": posts})
	})
}
