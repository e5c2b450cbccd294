package graphql

import (
	_ "embed"
)

//go:embed schema.graphqls
var schemaBase string

// Schema returns the storefront read schema.
func Schema() string {
	return schemaBase
}
