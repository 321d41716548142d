package repository

import (
	"pharmacare-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(db *gorm.DB, product *entity.Product) error
	FindAll(db *gorm.DB) ([]entity.Product, error)
	FindByID(db *gorm.DB, id int64) (*entity.Product, error)
	Update(db *gorm.DB, product *entity.Product) error
	Delete(db *gorm.DB, product *entity.Product) error
	Count(db *gorm.DB) (int64, error)
}
