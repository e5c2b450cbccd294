package catalog

// Item represents the items table. CategoryID references categories.id but
// the reference may be unresolved; consumers fall back to the "General" label.
type Item struct {
	ID          string  `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	ItemName    string  `gorm:"column:item_name;type:varchar(255)" json:"item_name"`
	Price       float64 `gorm:"column:price;type:decimal(12,2);not null;default:0" json:"price"`
	InStock     int     `gorm:"column:in_stock;not null;default:0" json:"in_stock"`
	CategoryID  int     `gorm:"column:category_id;index" json:"category_id"`
	ImageID     *string `gorm:"column:image_id;type:varchar(255)" json:"image_id"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	AssetID     *string `gorm:"column:asset_id;type:varchar(64)" json:"asset_id"`
	UserID      string  `gorm:"column:user_id;type:varchar(64);not null;index" json:"user_id"`
}

func (Item) TableName() string {
	return "items"
}

// ItemRow is an item row as returned by the loader queries: the raw Item
// columns plus the joined category name when the join strategy succeeded.
type ItemRow struct {
	Item
	CategoryName string `gorm:"column:category_name" json:"category_name"`
}
