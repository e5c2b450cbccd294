package catalog

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	catalogEntity "pirex.GO/model/entity/catalog"
	catalogRepo "pirex.GO/model/repository/catalog"
)

// View selects the item query shape: the shop lists everything, the home
// page features the first three.
type View int

const (
	ViewShop View = iota
	ViewFeatured
)

func (v View) limit() int {
	if v == ViewFeatured {
		return featuredLimit
	}
	return 0
}

const featuredLimit = 3

// Result is a completed catalog load. Products is never empty: the ladder
// bottoms out at the static sample set. Degraded marks any result produced
// without the stock predicate; Sample marks the static set specifically and
// drives the user-visible notice.
type Result struct {
	Categories []catalogEntity.Category `json:"categories"`
	Products   []Product                `json:"products"`
	Degraded   bool                     `json:"degraded"`
	Sample     bool                     `json:"sample"`
}

// Loader owns catalog reads and normalization for one storefront.
type Loader struct {
	repo  *catalogRepo.CatalogRepository
	owner string
}

func NewLoader(db *gorm.DB, owner string) *Loader {
	return &Loader{
		repo:  catalogRepo.GetCatalogRepository(db),
		owner: owner,
	}
}

// strategy is one rung of the fallback ladder. degraded marks rungs that
// dropped the stock predicate.
type strategy struct {
	name     string
	degraded bool
	fetch    func(owner string, limit int) ([]catalogEntity.ItemRow, error)
}

func (l *Loader) strategies() []strategy {
	return []strategy{
		{name: "joined", fetch: l.repo.FindItemsJoined},
		{name: "in-stock", fetch: l.repo.FindItemsInStock},
		{name: "any", degraded: true, fetch: l.repo.FindItemsAny},
	}
}

// Load fetches categories and items for the given view. Categories have no
// fallback: their failure is returned as a hard error and the caller shows a
// retry affordance. Items walk the ladder; ladder exhaustion yields the
// sample set, never an error.
func (l *Loader) Load(ctx context.Context, view View) (*Result, error) {
	cats, err := l.repo.FindCategoriesByOwner(l.owner)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	res := &Result{Categories: cats}
	rows, deg, sample := l.fetchItems(ctx, view)
	res.Degraded = deg
	res.Sample = sample

	// Rows from the plain strategies carry no joined name, so normalization
	// labels every product "General". That is deliberate: category names are
	// only trusted when the join strategy resolved them.
	res.Products = make([]Product, 0, len(rows))
	for _, row := range rows {
		res.Products = append(res.Products, normalize(row))
	}
	return res, nil
}

// fetchItems walks the fallback ladder in order; the first success wins.
// Each step's failure is logged, never surfaced.
func (l *Loader) fetchItems(ctx context.Context, view View) (rows []catalogEntity.ItemRow, degraded, sample bool) {
	limit := view.limit()
	for _, s := range l.strategies() {
		if err := ctx.Err(); err != nil {
			log.Printf("catalog load aborted: %v", err)
			break
		}
		got, err := s.fetch(l.owner, limit)
		if err != nil {
			log.Printf("catalog %s query failed, falling back: %v", s.name, err)
			continue
		}
		return got, s.degraded, false
	}
	log.Println("catalog queries exhausted, serving sample data")
	return sampleRows(limit), true, true
}
