package repository

import (
	"pharmacare-api/internal/domain/entity"

	"gorm.io/gorm"
)

// CustomerRepository methods take the gorm handle explicitly so callers
// can run them inside a transaction.
type CustomerRepository interface {
	Create(db *gorm.DB, customer *entity.Customer) error
	FindAll(db *gorm.DB) ([]entity.Customer, error)
	FindByID(db *gorm.DB, id int64) (*entity.Customer, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Customer, error)
	Update(db *gorm.DB, customer *entity.Customer) error
	Delete(db *gorm.DB, customer *entity.Customer) error
	Count(db *gorm.DB) (int64, error)
}
