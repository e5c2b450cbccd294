package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public storefront reads (catalog, blog, contact submit) need no auth
	return []string{
		"/api/catalog",
		"/api/catalog/featured",
		"/api/catalog/products",
		"/api/blog",
		"/api/contact",
		"/graphql",
	}
}
