package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"pirex.GO/graphql"
)

// NewSchema parses the storefront schema against the query resolver.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), graphql.NewQueryResolver(db))
}

// Mount registers the /graphql endpoint on the Echo instance. Read-only,
// auth-skipped like the other public catalog routes.
func Mount(e *echo.Echo, db *gorm.DB) error {
	schema, err := NewSchema(db)
	if err != nil {
		return err
	}
	handler := &relay.Handler{Schema: schema}
	e.POST("/graphql", echo.WrapHandler(handler))
	return nil
}
