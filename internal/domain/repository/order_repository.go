package repository

import (
	"pharmacare-api/internal/domain/entity"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(db *gorm.DB, order *entity.Order) error
	FindAll(db *gorm.DB) ([]entity.Order, error)
	FindByID(db *gorm.DB, id int64) (*entity.Order, error)
	Update(db *gorm.DB, order *entity.Order) error
	Delete(db *gorm.DB, order *entity.Order) error
	Count(db *gorm.DB) (int64, error)
}
