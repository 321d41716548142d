package repository

import (
	"errors"

	"pharmacare-api/internal/domain/entity"
	domainRepo "pharmacare-api/internal/domain/repository"

	"gorm.io/gorm"
)

type pharmacyRepository struct{}

func NewPharmacyRepository() domainRepo.PharmacyRepository {
	return &pharmacyRepository{}
}

func (r *pharmacyRepository) Create(db *gorm.DB, pharmacy *entity.Pharmacy) error {
	return db.Create(pharmacy).Error
}

func (r *pharmacyRepository) FindAll(db *gorm.DB) ([]entity.Pharmacy, error) {
	var pharmacies []entity.Pharmacy
	err := db.Order("id").Find(&pharmacies).Error
	return pharmacies, err
}

func (r *pharmacyRepository) FindByID(db *gorm.DB, id int64) (*entity.Pharmacy, error) {
	var pharmacy entity.Pharmacy
	err := db.Where("id = ?", id).First(&pharmacy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pharmacy, nil
}

func (r *pharmacyRepository) Update(db *gorm.DB, pharmacy *entity.Pharmacy) error {
	return db.Save(pharmacy).Error
}

func (r *pharmacyRepository) Delete(db *gorm.DB, pharmacy *entity.Pharmacy) error {
	return db.Delete(pharmacy).Error
}

func (r *pharmacyRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Pharmacy{}).Count(&total).Error
	return total, err
}
