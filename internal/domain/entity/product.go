package entity

import "github.com/shopspring/decimal"

// Product is a catalogue item sold by the pharmacies.
type Product struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string          `gorm:"type:varchar(100);not null" json:"name"`
	Description        string          `gorm:"type:text" json:"description"`
	RegistrationNumber string          `gorm:"type:varchar(100);not null" json:"registrationNumber"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID         *int64          `gorm:"index" json:"categoryId,omitempty"`

	Picture `gorm:"embedded"`

	Category *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
