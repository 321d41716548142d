package entity

// Pharmacy represents a registered pharmacy.
type Pharmacy struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Address string `gorm:"type:varchar(255);not null" json:"address"`
	City    string `gorm:"type:varchar(100);not null" json:"city"`

	Picture `gorm:"embedded"`
}

func (Pharmacy) TableName() string {
	return "pharmacies"
}
