package repository

import (
	"errors"

	"pharmacare-api/internal/domain/entity"
	domainRepo "pharmacare-api/internal/domain/repository"

	"gorm.io/gorm"
)

type pharmacistRepository struct{}

func NewPharmacistRepository() domainRepo.PharmacistRepository {
	return &pharmacistRepository{}
}

func (r *pharmacistRepository) Create(db *gorm.DB, pharmacist *entity.Pharmacist) error {
	return db.Create(pharmacist).Error
}

func (r *pharmacistRepository) FindAll(db *gorm.DB) ([]entity.Pharmacist, error) {
	var pharmacists []entity.Pharmacist
	err := db.Preload("Pharmacy").Order("id").Find(&pharmacists).Error
	return pharmacists, err
}

func (r *pharmacistRepository) FindByID(db *gorm.DB, id int64) (*entity.Pharmacist, error) {
	var pharmacist entity.Pharmacist
	err := db.Preload("Pharmacy").Where("id = ?", id).First(&pharmacist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pharmacist, nil
}

func (r *pharmacistRepository) FindByEmail(db *gorm.DB, email string) (*entity.Pharmacist, error) {
	var pharmacist entity.Pharmacist
	err := db.Where("email = ?", email).First(&pharmacist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pharmacist, nil
}

func (r *pharmacistRepository) Update(db *gorm.DB, pharmacist *entity.Pharmacist) error {
	return db.Save(pharmacist).Error
}

func (r *pharmacistRepository) Delete(db *gorm.DB, pharmacist *entity.Pharmacist) error {
	return db.Delete(pharmacist).Error
}

func (r *pharmacistRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Pharmacist{}).Count(&total).Error
	return total, err
}
