package contact

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"pirex.GO/api"
	contactService "pirex.GO/service/contact"
)

func init() {
	api.RegisterModule(RegisterContactRoutes)
}

func RegisterContactRoutes(apiGroup *echo.Group, db *gorm.DB) {
	dispatcher := contactService.NewDispatcher()

	// POST /api/contact – validate and relay a contact form submission
	apiGroup.POST("/contact", func(c echo.Context) error {
		var sub contactService.Submission
		if err := c.Bind(&sub); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "Invalid form data",
			})
		}

		if fieldErrs := contactService.Validate(&sub); len(fieldErrs) > 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "Invalid form data",
				"errors":  fieldErrs,
			})
		}

		if err := dispatcher.Send(&sub); err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"success": false,
				"message": "Failed to send message",
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Contact form submitted successfully",
		})
	})
}
