package repository

import (
	"errors"

	"pharmacare-api/internal/domain/entity"
	domainRepo "pharmacare-api/internal/domain/repository"

	"gorm.io/gorm"
)

type productRepository struct{}

func NewProductRepository() domainRepo.ProductRepository {
	return &productRepository{}
}

func (r *productRepository) Create(db *gorm.DB, product *entity.Product) error {
	return db.Create(product).Error
}

func (r *productRepository) FindAll(db *gorm.DB) ([]entity.Product, error) {
	var products []entity.Product
	err := db.Preload("Category").Order("id").Find(&products).Error
	return products, err
}

func (r *productRepository) FindByID(db *gorm.DB, id int64) (*entity.Product, error) {
	var product entity.Product
	err := db.Preload("Category").Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(db *gorm.DB, product *entity.Product) error {
	return db.Save(product).Error
}

func (r *productRepository) Delete(db *gorm.DB, product *entity.Product) error {
	return db.Delete(product).Error
}

func (r *productRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Product{}).Count(&total).Error
	return total, err
}
