package repository

import (
	"errors"

	"pharmacare-api/internal/domain/entity"
	domainRepo "pharmacare-api/internal/domain/repository"

	"gorm.io/gorm"
)

type customerRepository struct{}

func NewCustomerRepository() domainRepo.CustomerRepository {
	return &customerRepository{}
}

func (r *customerRepository) Create(db *gorm.DB, customer *entity.Customer) error {
	return db.Create(customer).Error
}

func (r *customerRepository) FindAll(db *gorm.DB) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := db.Order("id").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) FindByID(db *gorm.DB, id int64) (*entity.Customer, error) {
	var customer entity.Customer
	err := db.Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByEmail(db *gorm.DB, email string) (*entity.Customer, error) {
	var customer entity.Customer
	err := db.Where("email = ?", email).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(db *gorm.DB, customer *entity.Customer) error {
	return db.Save(customer).Error
}

func (r *customerRepository) Delete(db *gorm.DB, customer *entity.Customer) error {
	return db.Delete(customer).Error
}

func (r *customerRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Customer{}).Count(&total).Error
	return total, err
}
