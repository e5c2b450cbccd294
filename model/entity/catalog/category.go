package catalog

// Category represents the categories table. Categories are created and
// mutated only by the backing store; this service reads them.
type Category struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Category string `gorm:"column:category;type:varchar(255);not null" json:"category"`
	UserID   string `gorm:"column:user_id;type:varchar(64);not null;index" json:"user_id"`
}

func (Category) TableName() string {
	return "categories"
}
