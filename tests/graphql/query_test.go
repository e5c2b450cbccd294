package graphqltest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	gql "github.com/graph-gophers/graphql-go"
	"gorm.io/gorm"

	"pirex.GO/config"
	storefrontGraphql "pirex.GO/graphql"
	catalogEntity "pirex.GO/model/entity/catalog"
)

const gqlTestShop = "shop-gql"

func init() {
	config.AppConfig = &config.Config{
		ShopID:        gqlTestShop,
		StorageURL:    "https://storage.test/object/public",
		WhatsAppPhone: "263772572037",
		PriceRangeMax: 4000,
	}
}

func gqlTestSchema(t *testing.T) *gql.Schema {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&catalogEntity.Category{}, &catalogEntity.Item{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cats := []catalogEntity.Category{
		{ID: 1, Category: "Laptops", UserID: gqlTestShop},
		{ID: 2, Category: "Accessories", UserID: gqlTestShop},
	}
	if err := db.Create(&cats).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	img := "img-a"
	items := []catalogEntity.Item{
		{ID: "i1", ItemName: "Alpha Laptop", Price: 1200, InStock: 4, CategoryID: 1, ImageID: &img, Description: "Fast laptop", UserID: gqlTestShop},
		{ID: "i2", ItemName: "Beta Mouse", Price: 25, InStock: 7, CategoryID: 2, Description: "Wired mouse", UserID: gqlTestShop},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("seed items: %v", err)
	}

	schema, err := gql.ParseSchema(storefrontGraphql.Schema(), storefrontGraphql.NewQueryResolver(db))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return schema
}

func exec(t *testing.T, schema *gql.Schema, query string, out interface{}) {
	resp := schema.Exec(context.Background(), query, "", nil)
	if len(resp.Errors) > 0 {
		t.Fatalf("query errors: %v", resp.Errors)
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestGraphQL_SchemaParsesAgainstResolver(t *testing.T) {
	// Schema/resolver drift (a mistyped scalar, a missing method) would make
	// ParseSchema fail and panic the server at startup. No DB access happens
	// during parsing, so nil is fine here.
	if _, err := gql.ParseSchema(storefrontGraphql.Schema(), storefrontGraphql.NewQueryResolver(nil)); err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
}

func TestGraphQL_Categories(t *testing.T) {
	schema := gqlTestSchema(t)

	var data struct {
		Categories []struct {
			ID       int32  `json:"id"`
			Category string `json:"category"`
		} `json:"categories"`
	}
	exec(t, schema, `{ categories { id category } }`, &data)

	if len(data.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(data.Categories))
	}
	if data.Categories[0].Category != "Laptops" {
		t.Errorf("first category = %q", data.Categories[0].Category)
	}
}

func TestGraphQL_ProductsFilterAndFields(t *testing.T) {
	schema := gqlTestSchema(t)

	var data struct {
		Products struct {
			Products []struct {
				ID           string  `json:"id"`
				Name         string  `json:"name"`
				Category     string  `json:"category"`
				Price        float64 `json:"price"`
				ImageURL     *string `json:"imageUrl"`
				Glyph        string  `json:"glyph"`
				PurchaseLink string  `json:"purchaseLink"`
			} `json:"products"`
			Degraded bool `json:"degraded"`
			Sample   bool `json:"sample"`
		} `json:"products"`
	}
	exec(t, schema, `{
		products(category: "Laptops", sort: "price-asc") {
			products { id name category price imageUrl glyph purchaseLink }
			degraded
			sample
		}
	}`, &data)

	got := data.Products
	if got.Degraded || got.Sample {
		t.Errorf("degraded=%v sample=%v on healthy load", got.Degraded, got.Sample)
	}
	if len(got.Products) != 1 {
		t.Fatalf("got %d products, want 1", len(got.Products))
	}
	p := got.Products[0]
	if p.ID != "i1" || p.Name != "Alpha Laptop" {
		t.Errorf("product = %+v", p)
	}
	if p.Glyph != "💻" {
		t.Errorf("glyph = %q", p.Glyph)
	}
	if p.ImageURL == nil {
		t.Error("imageUrl is null for an item with an image")
	}
	if p.PurchaseLink == "" {
		t.Error("purchaseLink is empty")
	}
}

func TestGraphQL_ProductsNullImage(t *testing.T) {
	schema := gqlTestSchema(t)

	var data struct {
		Products struct {
			Products []struct {
				ID       string  `json:"id"`
				ImageURL *string `json:"imageUrl"`
			} `json:"products"`
		} `json:"products"`
	}
	exec(t, schema, `{
		products(category: "Accessories") {
			products { id imageUrl }
		}
	}`, &data)

	if len(data.Products.Products) != 1 {
		t.Fatalf("got %d products, want 1", len(data.Products.Products))
	}
	if data.Products.Products[0].ImageURL != nil {
		t.Errorf("imageUrl = %v, want null", *data.Products.Products[0].ImageURL)
	}
}

func TestGraphQL_SearchFallsBackToFilterEngine(t *testing.T) {
	schema := gqlTestSchema(t)

	var data struct {
		Search []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"search"`
	}
	exec(t, schema, `{ search(query: "mouse") { id name } }`, &data)

	if len(data.Search) != 1 {
		t.Fatalf("got %d hits, want 1", len(data.Search))
	}
	if data.Search[0].ID != "i2" {
		t.Errorf("hit = %+v", data.Search[0])
	}
}

func TestGraphQL_Featured(t *testing.T) {
	schema := gqlTestSchema(t)

	var data struct {
		Featured struct {
			Products []struct {
				ID string `json:"id"`
			} `json:"products"`
		} `json:"featured"`
	}
	exec(t, schema, `{ featured { products { id } } }`, &data)

	if len(data.Featured.Products) != 2 {
		t.Fatalf("got %d featured products, want 2", len(data.Featured.Products))
	}
}
