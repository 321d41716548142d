package repository

import (
	"pharmacare-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PharmacistRepository interface {
	Create(db *gorm.DB, pharmacist *entity.Pharmacist) error
	FindAll(db *gorm.DB) ([]entity.Pharmacist, error)
	FindByID(db *gorm.DB, id int64) (*entity.Pharmacist, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Pharmacist, error)
	Update(db *gorm.DB, pharmacist *entity.Pharmacist) error
	Delete(db *gorm.DB, pharmacist *entity.Pharmacist) error
	Count(db *gorm.DB) (int64, error)
}
