package usecase

import (
	"context"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StatsUsecase computes the dashboard counters.
type StatsUsecase interface {
	AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	AdminPharmacyStats(ctx context.Context) (*dto.AdminPharmacyStatsResponse, error)
}

type statsUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	customerRepo   repository.CustomerRepository
	deliveryRepo   repository.DeliveryRepository
	pharmacyRepo   repository.PharmacyRepository
	adminRepo      repository.AdminPharmacyRepository
	orderRepo      repository.OrderRepository
	pharmacistRepo repository.PharmacistRepository
	categoryRepo   repository.ProductCategoryRepository
	productRepo    repository.ProductRepository
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	customerRepo repository.CustomerRepository,
	deliveryRepo repository.DeliveryRepository,
	pharmacyRepo repository.PharmacyRepository,
	adminRepo repository.AdminPharmacyRepository,
	orderRepo repository.OrderRepository,
	pharmacistRepo repository.PharmacistRepository,
	categoryRepo repository.ProductCategoryRepository,
	productRepo repository.ProductRepository,
) StatsUsecase {
	return &statsUsecase{
		db:             db,
		log:            log,
		customerRepo:   customerRepo,
		deliveryRepo:   deliveryRepo,
		pharmacyRepo:   pharmacyRepo,
		adminRepo:      adminRepo,
		orderRepo:      orderRepo,
		pharmacistRepo: pharmacistRepo,
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
	}
}

func (u *statsUsecase) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	db := u.db.WithContext(ctx)

	customers, err := u.customerRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count customers: %+v", err)
		return nil, err
	}
	deliveries, err := u.deliveryRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count delivery agents: %+v", err)
		return nil, err
	}
	pharmacies, err := u.pharmacyRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count pharmacies: %+v", err)
		return nil, err
	}
	admins, err := u.adminRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count pharmacy admins: %+v", err)
		return nil, err
	}
	orders, err := u.orderRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count orders: %+v", err)
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalClients:        customers,
		TotalLivreurs:       deliveries,
		TotalPharmacies:     pharmacies,
		TotalAdminPharmacie: admins,
		TotalOrders:         orders,
	}, nil
}

func (u *statsUsecase) AdminPharmacyStats(ctx context.Context) (*dto.AdminPharmacyStatsResponse, error) {
	db := u.db.WithContext(ctx)

	pharmacies, err := u.pharmacyRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count pharmacies: %+v", err)
		return nil, err
	}
	pharmacists, err := u.pharmacistRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count pharmacists: %+v", err)
		return nil, err
	}
	categories, err := u.categoryRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count product categories: %+v", err)
		return nil, err
	}
	products, err := u.productRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count products: %+v", err)
		return nil, err
	}

	return &dto.AdminPharmacyStatsResponse{
		TotalPharmacies:  pharmacies,
		TotalPharmaciens: pharmacists,
		TotalCategories:  categories,
		TotalProduits:    products,
	}, nil
}
