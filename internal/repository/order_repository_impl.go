package repository

import (
	"errors"

	"pharmacare-api/internal/domain/entity"
	domainRepo "pharmacare-api/internal/domain/repository"

	"gorm.io/gorm"
)

type orderRepository struct{}

func NewOrderRepository() domainRepo.OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(db *gorm.DB, order *entity.Order) error {
	return db.Create(order).Error
}

func (r *orderRepository) FindAll(db *gorm.DB) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.
		Preload("Customer").
		Preload("Pharmacist").
		Preload("Delivery").
		Preload("Product").
		Preload("Prescription").
		Order("id").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) FindByID(db *gorm.DB, id int64) (*entity.Order, error) {
	var order entity.Order
	err := db.
		Preload("Customer").
		Preload("Pharmacist").
		Preload("Delivery").
		Preload("Product").
		Preload("Prescription").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Update(db *gorm.DB, order *entity.Order) error {
	return db.Save(order).Error
}

func (r *orderRepository) Delete(db *gorm.DB, order *entity.Order) error {
	return db.Delete(order).Error
}

func (r *orderRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Order{}).Count(&total).Error
	return total, err
}
