package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a customer order. The creation date is fixed at
// construction and only explicitly overwritten on edit.
type Order struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreationDate       time.Time       `gorm:"type:date;not null" json:"creationDate"`
	RegistrationNumber string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"registrationNumber"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity           int             `gorm:"not null" json:"quantity"`
	Statue             bool            `gorm:"not null" json:"statue"`
	CustomerID         *int64          `gorm:"index" json:"customerId,omitempty"`
	PharmacistID       *int64          `gorm:"index" json:"pharmacistId,omitempty"`
	DeliveryID         *int64          `gorm:"index" json:"deliveryId,omitempty"`
	ProductID          *int64          `gorm:"index" json:"productId,omitempty"`
	PrescriptionID     *int64          `gorm:"index" json:"prescriptionId,omitempty"`

	Customer     *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Pharmacist   *Pharmacist   `gorm:"foreignKey:PharmacistID" json:"pharmacist,omitempty"`
	Delivery     *Delivery     `gorm:"foreignKey:DeliveryID" json:"delivery,omitempty"`
	Product      *Product      `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Prescription *Prescription `gorm:"foreignKey:PrescriptionID" json:"prescription,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// NewOrder returns an order with its creation date set to now.
func NewOrder() *Order {
	return &Order{CreationDate: time.Now()}
}
