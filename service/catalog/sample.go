package catalog

import (
	catalogEntity "pirex.GO/model/entity/catalog"
)

// sampleItems is the static fallback set served when every query strategy
// fails. Values are fixed so a degraded storefront still renders something.
var sampleItems = []catalogEntity.ItemRow{
	{
		Item: catalogEntity.Item{
			ID:          "1",
			ItemName:    "Sample Product 1",
			Price:       299,
			InStock:     10,
			CategoryID:  1,
			Description: "Sample product description",
		},
		CategoryName: "Electronics",
	},
	{
		Item: catalogEntity.Item{
			ID:          "2",
			ItemName:    "Sample Product 2",
			Price:       199,
			InStock:     5,
			CategoryID:  2,
			Description: "Sample product description",
		},
		CategoryName: "Accessories",
	},
	{
		Item: catalogEntity.Item{
			ID:          "3",
			ItemName:    "Sample Product 3",
			Price:       499,
			InStock:     3,
			CategoryID:  3,
			Description: "Sample product description",
		},
		CategoryName: "Computers",
	},
}

// sampleRows returns a fresh copy so callers can never mutate the canonical set.
func sampleRows(limit int) []catalogEntity.ItemRow {
	rows := make([]catalogEntity.ItemRow, len(sampleItems))
	copy(rows, sampleItems)
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
