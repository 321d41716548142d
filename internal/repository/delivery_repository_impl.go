package repository

import (
	"errors"

	"pharmacare-api/internal/domain/entity"
	domainRepo "pharmacare-api/internal/domain/repository"

	"gorm.io/gorm"
)

type deliveryRepository struct{}

func NewDeliveryRepository() domainRepo.DeliveryRepository {
	return &deliveryRepository{}
}

func (r *deliveryRepository) Create(db *gorm.DB, delivery *entity.Delivery) error {
	return db.Create(delivery).Error
}

func (r *deliveryRepository) FindAll(db *gorm.DB) ([]entity.Delivery, error) {
	var deliveries []entity.Delivery
	err := db.Order("id").Find(&deliveries).Error
	return deliveries, err
}

func (r *deliveryRepository) FindByID(db *gorm.DB, id int64) (*entity.Delivery, error) {
	var delivery entity.Delivery
	err := db.Where("id = ?", id).First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) FindByEmail(db *gorm.DB, email string) (*entity.Delivery, error) {
	var delivery entity.Delivery
	err := db.Where("email = ?", email).First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) Update(db *gorm.DB, delivery *entity.Delivery) error {
	return db.Save(delivery).Error
}

func (r *deliveryRepository) Delete(db *gorm.DB, delivery *entity.Delivery) error {
	return db.Delete(delivery).Error
}

func (r *deliveryRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Delivery{}).Count(&total).Error
	return total, err
}
