package repository

import (
	"pharmacare-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AdminPharmacyRepository interface {
	Create(db *gorm.DB, admin *entity.AdminPharmacy) error
	FindAll(db *gorm.DB) ([]entity.AdminPharmacy, error)
	FindByID(db *gorm.DB, id int64) (*entity.AdminPharmacy, error)
	FindByEmail(db *gorm.DB, email string) (*entity.AdminPharmacy, error)
	Update(db *gorm.DB, admin *entity.AdminPharmacy) error
	Delete(db *gorm.DB, admin *entity.AdminPharmacy) error
	Count(db *gorm.DB) (int64, error)
}
