package repository

import (
	"pharmacare-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DeliveryRepository interface {
	Create(db *gorm.DB, delivery *entity.Delivery) error
	FindAll(db *gorm.DB) ([]entity.Delivery, error)
	FindByID(db *gorm.DB, id int64) (*entity.Delivery, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Delivery, error)
	Update(db *gorm.DB, delivery *entity.Delivery) error
	Delete(db *gorm.DB, delivery *entity.Delivery) error
	Count(db *gorm.DB) (int64, error)
}
