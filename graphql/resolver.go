package graphql

import (
	"context"
	"log"

	gql "github.com/graph-gophers/graphql-go"
	"gorm.io/gorm"

	"pirex.GO/config"
	catalogService "pirex.GO/service/catalog"
	searchService "pirex.GO/service/search"
)

// QueryResolver implements the storefront read queries over the catalog
// loader and filter engine.
type QueryResolver struct {
	loader *catalogService.Loader
}

func NewQueryResolver(db *gorm.DB) *QueryResolver {
	return &QueryResolver{
		loader: catalogService.NewLoader(db, config.AppConfig.ShopID),
	}
}

type CategoryResolver struct {
	id       int32
	category string
}

func (r *CategoryResolver) ID() int32 { return r.id }

func (r *CategoryResolver) Category() string { return r.category }

type ProductResolver struct {
	p catalogService.Product
}

func (r *ProductResolver) ID() gql.ID { return gql.ID(r.p.ID) }

func (r *ProductResolver) Name() string { return r.p.Name }

func (r *ProductResolver) Category() string { return r.p.Category }

func (r *ProductResolver) Price() float64 { return r.p.Price }

func (r *ProductResolver) Description() string { return r.p.Description }

func (r *ProductResolver) InStock() int32 { return int32(r.p.InStock) }

func (r *ProductResolver) Glyph() string { return r.p.Glyph }

func (r *ProductResolver) ImageURL() *string {
	if r.p.ImageURL == "" {
		return nil
	}
	u := r.p.ImageURL
	return &u
}

func (r *ProductResolver) PurchaseLink() string {
	return catalogService.PurchaseLink(r.p.Name)
}

type CatalogResultResolver struct {
	res      *catalogService.Result
	products []catalogService.Product
}

func (r *CatalogResultResolver) Products() []*ProductResolver {
	out := make([]*ProductResolver, len(r.products))
	for i, p := range r.products {
		out[i] = &ProductResolver{p: p}
	}
	return out
}

func (r *CatalogResultResolver) Degraded() bool { return r.res.Degraded }

func (r *CatalogResultResolver) Sample() bool { return r.res.Sample }

func (q *QueryResolver) Categories(ctx context.Context) ([]*CategoryResolver, error) {
	res, err := q.loader.Load(ctx, catalogService.ViewShop)
	if err != nil {
		return nil, err
	}
	out := make([]*CategoryResolver, len(res.Categories))
	for i, c := range res.Categories {
		out[i] = &CategoryResolver{id: int32(c.ID), category: c.Category}
	}
	return out, nil
}

func (q *QueryResolver) Products(ctx context.Context, args struct {
	Search   *string
	Category *string
	PriceMin *float64
	PriceMax *float64
	Sort     *string
}) (*CatalogResultResolver, error) {
	res, err := q.loader.Load(ctx, catalogService.ViewShop)
	if err != nil {
		return nil, err
	}

	filter := catalogService.Filter{
		Category: catalogService.CategoryAll,
		PriceMax: 1e18,
		Sort:     catalogService.SortFeatured,
	}
	if args.Search != nil {
		filter.Search = *args.Search
	}
	if args.Category != nil && *args.Category != "" {
		filter.Category = *args.Category
	}
	if args.PriceMin != nil {
		filter.PriceMin = *args.PriceMin
	}
	if args.PriceMax != nil {
		filter.PriceMax = *args.PriceMax
	}
	if args.Sort != nil && *args.Sort != "" {
		filter.Sort = *args.Sort
	}

	return &CatalogResultResolver{
		res:      res,
		products: catalogService.Apply(res.Products, filter),
	}, nil
}

func (q *QueryResolver) Featured(ctx context.Context) (*CatalogResultResolver, error) {
	res, err := q.loader.Load(ctx, catalogService.ViewFeatured)
	if err != nil {
		return nil, err
	}
	return &CatalogResultResolver{res: res, products: res.Products}, nil
}

func (q *QueryResolver) Search(ctx context.Context, args struct {
	Query string
	Size  *int32
}) ([]*ProductResolver, error) {
	size := 0
	if args.Size != nil {
		size = int(*args.Size)
	}

	svc := searchService.GetService()
	var products []catalogService.Product
	if svc.Enabled() {
		hits, err := svc.Search(ctx, config.AppConfig.ShopID, args.Query, size)
		if err == nil {
			products = hits
		} else {
			log.Printf("search backend failed, using filter engine: %v", err)
		}
	}
	if products == nil {
		res, err := q.loader.Load(ctx, catalogService.ViewShop)
		if err != nil {
			return nil, err
		}
		products = catalogService.Apply(res.Products, catalogService.Filter{
			Search:   args.Query,
			Category: catalogService.CategoryAll,
			PriceMax: 1e18,
		})
		if size > 0 && size < len(products) {
			products = products[:size]
		}
	}

	out := make([]*ProductResolver, len(products))
	for i, p := range products {
		out[i] = &ProductResolver{p: p}
	}
	return out, nil
}
