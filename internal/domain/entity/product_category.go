package entity

// ProductCategory groups products for the pharmacy catalogue.
type ProductCategory struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	Picture `gorm:"embedded"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}
