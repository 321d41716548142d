package repository

import (
	"errors"

	"pharmacare-api/internal/domain/entity"
	domainRepo "pharmacare-api/internal/domain/repository"

	"gorm.io/gorm"
)

type productCategoryRepository struct{}

func NewProductCategoryRepository() domainRepo.ProductCategoryRepository {
	return &productCategoryRepository{}
}

func (r *productCategoryRepository) Create(db *gorm.DB, category *entity.ProductCategory) error {
	return db.Create(category).Error
}

func (r *productCategoryRepository) FindAll(db *gorm.DB) ([]entity.ProductCategory, error) {
	var categories []entity.ProductCategory
	err := db.Order("id").Find(&categories).Error
	return categories, err
}

func (r *productCategoryRepository) FindByID(db *gorm.DB, id int64) (*entity.ProductCategory, error) {
	var category entity.ProductCategory
	err := db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *productCategoryRepository) Update(db *gorm.DB, category *entity.ProductCategory) error {
	return db.Save(category).Error
}

func (r *productCategoryRepository) Delete(db *gorm.DB, category *entity.ProductCategory) error {
	return db.Delete(category).Error
}

func (r *productCategoryRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.ProductCategory{}).Count(&total).Error
	return total, err
}
