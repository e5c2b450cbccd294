package catalog

import (
	"sync"

	"gorm.io/gorm"

	catalogEntity "pirex.GO/model/entity/catalog"
)

type CatalogRepository struct {
	db *gorm.DB
}

var (
	instance *CatalogRepository
	mu       sync.Mutex
)

// GetCatalogRepository returns a shared repository for the given DB.
func GetCatalogRepository(db *gorm.DB) *CatalogRepository {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil || instance.db != db {
		instance = NewCatalogRepository(db)
	}
	return instance
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// FindCategoriesByOwner returns all categories for one storefront. A failure
// here is fatal to the caller; categories have no fallback.
func (r *CatalogRepository) FindCategoriesByOwner(owner string) ([]catalogEntity.Category, error) {
	var cats []catalogEntity.Category
	err := r.db.Where("user_id = ?", owner).Order("id").Find(&cats).Error
	return cats, err
}

// FindItemsJoined returns in-stock items joined to their category so each row
// carries the resolved category name. The join is LEFT with the tenant filter
// on the join side: an item whose category reference does not resolve still
// comes back, with an empty name. limit <= 0 means no limit.
func (r *CatalogRepository) FindItemsJoined(owner string, limit int) ([]catalogEntity.ItemRow, error) {
	var rows []catalogEntity.ItemRow
	q := r.db.Table("items").
		Select("items.*, categories.category AS category_name").
		Joins("LEFT JOIN categories ON categories.id = items.category_id AND categories.user_id = ?", owner).
		Where("items.user_id = ?", owner).
		Where("items.in_stock > 0").
		Order("items.id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

// FindItemsInStock returns in-stock items without the category join.
func (r *CatalogRepository) FindItemsInStock(owner string, limit int) ([]catalogEntity.ItemRow, error) {
	var rows []catalogEntity.ItemRow
	q := r.db.Table("items").
		Where("user_id = ?", owner).
		Where("in_stock > 0").
		Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

// FindItemsAny returns items for the storefront with no stock predicate.
// Last query step before the static sample set.
func (r *CatalogRepository) FindItemsAny(owner string, limit int) ([]catalogEntity.ItemRow, error) {
	var rows []catalogEntity.ItemRow
	q := r.db.Table("items").Where("user_id = ?", owner).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&rows).Error
	return rows, err
}
