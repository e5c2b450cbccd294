package graphql

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"pirex.GO/api"
	"pirex.GO/graphqlserver"
)

func init() {
	api.RegisterRoute(RegisterGraphQLRoutes)
}

// RegisterGraphQLRoutes mounts the public /graphql endpoint.
func RegisterGraphQLRoutes(e *echo.Echo, db *gorm.DB) {
	if err := graphqlserver.Mount(e, db); err != nil {
		panic("graphql schema: " + err.Error())
	}
}
