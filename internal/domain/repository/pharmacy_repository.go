package repository

import (
	"pharmacare-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PharmacyRepository interface {
	Create(db *gorm.DB, pharmacy *entity.Pharmacy) error
	FindAll(db *gorm.DB) ([]entity.Pharmacy, error)
	FindByID(db *gorm.DB, id int64) (*entity.Pharmacy, error)
	Update(db *gorm.DB, pharmacy *entity.Pharmacy) error
	Delete(db *gorm.DB, pharmacy *entity.Pharmacy) error
	Count(db *gorm.DB) (int64, error)
}
