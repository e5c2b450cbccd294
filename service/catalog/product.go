package catalog

import (
	catalogEntity "pirex.GO/model/entity/catalog"
)

// Defaults applied during normalization when raw item fields are absent.
const (
	DefaultName        = "Unnamed Product"
	DefaultDescription = "No description available"
	DefaultCategory    = "General"
)

// Product is the normalized, read-only shape consumed by every view.
// Built once per load; re-derived only on reload.
type Product struct {
	ID          string  `json:"id" mapstructure:"id"`
	Name        string  `json:"name" mapstructure:"item_name"`
	Category    string  `json:"category" mapstructure:"category"`
	Price       float64 `json:"price" mapstructure:"price"`
	Description string  `json:"description" mapstructure:"description"`
	InStock     int     `json:"in_stock" mapstructure:"in_stock"`
	ImageURL    string  `json:"image_url,omitempty" mapstructure:"-"`
	Glyph       string  `json:"glyph" mapstructure:"-"`
}

// normalize builds a Product from a raw item row, applying the documented
// defaults for absent fields and resolving the image URL and category glyph.
func normalize(row catalogEntity.ItemRow) Product {
	p := Product{
		ID:          row.ID,
		Name:        row.ItemName,
		Category:    row.CategoryName,
		Price:       row.Price,
		Description: row.Description,
		InStock:     row.InStock,
	}
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Description == "" {
		p.Description = DefaultDescription
	}
	if p.Price < 0 {
		p.Price = 0
	}
	if p.InStock < 0 {
		p.InStock = 0
	}
	if row.ImageID != nil {
		p.ImageURL = ImageURL(*row.ImageID)
	}
	p.Glyph = CategoryGlyph(p.Category)
	return p
}
