package repository

import (
	"pharmacare-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ProductCategoryRepository interface {
	Create(db *gorm.DB, category *entity.ProductCategory) error
	FindAll(db *gorm.DB) ([]entity.ProductCategory, error)
	FindByID(db *gorm.DB, id int64) (*entity.ProductCategory, error)
	Update(db *gorm.DB, category *entity.ProductCategory) error
	Delete(db *gorm.DB, category *entity.ProductCategory) error
	Count(db *gorm.DB) (int64, error)
}
