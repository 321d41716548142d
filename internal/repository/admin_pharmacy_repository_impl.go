package repository

import (
	"errors"

	"pharmacare-api/internal/domain/entity"
	domainRepo "pharmacare-api/internal/domain/repository"

	"gorm.io/gorm"
)

type adminPharmacyRepository struct{}

func NewAdminPharmacyRepository() domainRepo.AdminPharmacyRepository {
	return &adminPharmacyRepository{}
}

func (r *adminPharmacyRepository) Create(db *gorm.DB, admin *entity.AdminPharmacy) error {
	return db.Create(admin).Error
}

func (r *adminPharmacyRepository) FindAll(db *gorm.DB) ([]entity.AdminPharmacy, error) {
	var admins []entity.AdminPharmacy
	err := db.Preload("Pharmacy").Order("id").Find(&admins).Error
	return admins, err
}

func (r *adminPharmacyRepository) FindByID(db *gorm.DB, id int64) (*entity.AdminPharmacy, error) {
	var admin entity.AdminPharmacy
	err := db.Preload("Pharmacy").Where("id = ?", id).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminPharmacyRepository) FindByEmail(db *gorm.DB, email string) (*entity.AdminPharmacy, error) {
	var admin entity.AdminPharmacy
	err := db.Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminPharmacyRepository) Update(db *gorm.DB, admin *entity.AdminPharmacy) error {
	return db.Save(admin).Error
}

func (r *adminPharmacyRepository) Delete(db *gorm.DB, admin *entity.AdminPharmacy) error {
	return db.Delete(admin).Error
}

func (r *adminPharmacyRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.AdminPharmacy{}).Count(&total).Error
	return total, err
}
