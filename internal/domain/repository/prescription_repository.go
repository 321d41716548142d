package repository

import (
	"pharmacare-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindAll(db *gorm.DB) ([]entity.Prescription, error)
	FindByID(db *gorm.DB, id int64) (*entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, prescription *entity.Prescription) error
	Count(db *gorm.DB) (int64, error)
}
