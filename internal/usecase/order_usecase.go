package usecase

import (
	"context"
	"errors"
	"time"

	"pharmacare-api/internal/converter"
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/internal/domain/repository"
	"pharmacare-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRegistrationNumberExists = errors.New("registration number already exists")

type OrderUsecase interface {
	List(ctx context.Context) ([]dto.OrderResponse, error)
	Get(ctx context.Context, id int64) (*dto.OrderResponse, error)
	Create(ctx context.Context, actor *Actor, req *dto.OrderRequest) (*dto.OrderResponse, error)
	Update(ctx context.Context, actor *Actor, id int64, req *dto.OrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, actor *Actor, id int64) error
	CreateBulk(ctx context.Context, actor *Actor, reqs []dto.OrderRequest) ([]dto.OrderResponse, error)
	UpdateBulk(ctx context.Context, actor *Actor, items []dto.UpdateOrderBulkItem) ([]dto.OrderResponse, error)
	DeleteBulk(ctx context.Context, actor *Actor, ids []int64) (*dto.BulkIDResult, error)
}

type orderUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	orderRepo        repository.OrderRepository
	customerRepo     repository.CustomerRepository
	pharmacistRepo   repository.PharmacistRepository
	deliveryRepo     repository.DeliveryRepository
	productRepo      repository.ProductRepository
	prescriptionRepo repository.PrescriptionRepository
	auditService     service.AuditService
}

func NewOrderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	pharmacistRepo repository.PharmacistRepository,
	deliveryRepo repository.DeliveryRepository,
	productRepo repository.ProductRepository,
	prescriptionRepo repository.PrescriptionRepository,
	auditService service.AuditService,
) OrderUsecase {
	return &orderUsecase{
		db:               db,
		log:              log,
		orderRepo:        orderRepo,
		customerRepo:     customerRepo,
		pharmacistRepo:   pharmacistRepo,
		deliveryRepo:     deliveryRepo,
		productRepo:      productRepo,
		prescriptionRepo: prescriptionRepo,
		auditService:     auditService,
	}
}

func (u *orderUsecase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := u.orderRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list orders: %+v", err)
		return nil, err
	}
	return converter.OrdersToResponses(orders), nil
}

func (u *orderUsecase) Get(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := u.orderRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, &NotFoundError{Entity: "Order"}
	}
	return converter.OrderToResponse(order), nil
}

// resolveReferences requires all five references and verifies each one
// exists, so every missing piece gets its own message.
func (u *orderUsecase) resolveReferences(tx *gorm.DB, req *dto.OrderRequest) error {
	if req.CustomerID == nil {
		return &RequiredError{Field: "Customer ID"}
	}
	if req.PharmacistID == nil {
		return &RequiredError{Field: "Pharmacist ID"}
	}
	if req.DeliveryID == nil {
		return &RequiredError{Field: "Delivery ID"}
	}
	if req.ProductID == nil {
		return &RequiredError{Field: "Product ID"}
	}
	if req.PrescriptionID == nil {
		return &RequiredError{Field: "Prescription ID"}
	}

	customer, err := u.customerRepo.FindByID(tx, *req.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return &NotFoundError{Entity: "Customer"}
	}

	pharmacist, err := u.pharmacistRepo.FindByID(tx, *req.PharmacistID)
	if err != nil {
		return err
	}
	if pharmacist == nil {
		return &NotFoundError{Entity: "Pharmacist"}
	}

	delivery, err := u.deliveryRepo.FindByID(tx, *req.DeliveryID)
	if err != nil {
		return err
	}
	if delivery == nil {
		return &NotFoundError{Entity: "Delivery"}
	}

	product, err := u.productRepo.FindByID(tx, *req.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return &NotFoundError{Entity: "Product"}
	}

	prescription, err := u.prescriptionRepo.FindByID(tx, *req.PrescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return &NotFoundError{Entity: "Prescription"}
	}

	return nil
}

func (u *orderUsecase) createOne(tx *gorm.DB, actor *Actor, req *dto.OrderRequest) (*entity.Order, error) {
	if err := u.resolveReferences(tx, req); err != nil {
		return nil, err
	}

	order := entity.NewOrder()
	if req.CreationDate != "" {
		creationDate, err := time.Parse("2006-01-02", req.CreationDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		order.CreationDate = creationDate
	}
	order.RegistrationNumber = req.RegistrationNumber
	order.Price = req.Price
	order.Quantity = req.Quantity
	order.Statue = *req.Statue
	order.CustomerID = req.CustomerID
	order.PharmacistID = req.PharmacistID
	order.DeliveryID = req.DeliveryID
	order.ProductID = req.ProductID
	order.PrescriptionID = req.PrescriptionID

	if err := u.orderRepo.Create(tx, order); err != nil {
		if isDuplicateKeyError(err, "registration_number") {
			return nil, ErrRegistrationNumberExists
		}
		u.log.Warnf("Failed to create order: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actor.id(), actor.role(), entity.AuditActionOrderCreate, "order", order.ID, order.RegistrationNumber); err != nil {
		return nil, err
	}

	return order, nil
}

func (u *orderUsecase) Create(ctx context.Context, actor *Actor, req *dto.OrderRequest) (*dto.OrderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	order, err := u.createOne(tx, actor, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reload with relations for the response.
	created, err := u.orderRepo.FindByID(u.db.WithContext(ctx), order.ID)
	if err != nil || created == nil {
		return converter.OrderToResponse(order), nil
	}
	return converter.OrderToResponse(created), nil
}

func (u *orderUsecase) updateOne(tx *gorm.DB, actor *Actor, id int64, req *dto.OrderRequest) (*entity.Order, error) {
	order, err := u.orderRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, &NotFoundError{Entity: "Order"}
	}

	if err := u.resolveReferences(tx, req); err != nil {
		return nil, err
	}

	if req.CreationDate != "" {
		creationDate, err := time.Parse("2006-01-02", req.CreationDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		order.CreationDate = creationDate
	}
	order.RegistrationNumber = req.RegistrationNumber
	order.Price = req.Price
	order.Quantity = req.Quantity
	order.Statue = *req.Statue
	order.CustomerID = req.CustomerID
	order.PharmacistID = req.PharmacistID
	order.DeliveryID = req.DeliveryID
	order.ProductID = req.ProductID
	order.PrescriptionID = req.PrescriptionID
	order.Customer = nil
	order.Pharmacist = nil
	order.Delivery = nil
	order.Product = nil
	order.Prescription = nil

	if err := u.orderRepo.Update(tx, order); err != nil {
		if isDuplicateKeyError(err, "registration_number") {
			return nil, ErrRegistrationNumberExists
		}
		u.log.Warnf("Failed to update order: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, actor.id(), actor.role(), entity.AuditActionOrderUpdate, "order", order.ID, nil, order.RegistrationNumber); err != nil {
		return nil, err
	}

	return order, nil
}

func (u *orderUsecase) Update(ctx context.Context, actor *Actor, id int64, req *dto.OrderRequest) (*dto.OrderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	order, err := u.updateOne(tx, actor, id, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	updated, err := u.orderRepo.FindByID(u.db.WithContext(ctx), order.ID)
	if err != nil || updated == nil {
		return converter.OrderToResponse(order), nil
	}
	return converter.OrderToResponse(updated), nil
}

func (u *orderUsecase) Delete(ctx context.Context, actor *Actor, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	order, err := u.orderRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find order: %+v", err)
		return err
	}
	if order == nil {
		return &NotFoundError{Entity: "Order"}
	}

	if err := u.orderRepo.Delete(tx, order); err != nil {
		u.log.Warnf("Failed to delete order: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actor.id(), actor.role(), entity.AuditActionOrderDelete, "order", order.ID, order.RegistrationNumber); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *orderUsecase) CreateBulk(ctx context.Context, actor *Actor, reqs []dto.OrderRequest) ([]dto.OrderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	orders := make([]entity.Order, 0, len(reqs))
	for i := range reqs {
		order, err := u.createOne(tx, actor, &reqs[i])
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		orders = append(orders, *order)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OrdersToResponses(orders), nil
}

func (u *orderUsecase) UpdateBulk(ctx context.Context, actor *Actor, items []dto.UpdateOrderBulkItem) ([]dto.OrderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	orders := make([]entity.Order, 0, len(items))
	for i := range items {
		order, err := u.updateOne(tx, actor, items[i].ID, &items[i].OrderRequest)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		orders = append(orders, *order)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OrdersToResponses(orders), nil
}

func (u *orderUsecase) DeleteBulk(ctx context.Context, actor *Actor, ids []int64) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		order, err := u.orderRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find order: %+v", err)
			return nil, err
		}
		if order == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if err := u.orderRepo.Delete(tx, order); err != nil {
			u.log.Warnf("Failed to delete order: %+v", err)
			return nil, err
		}

		if err := u.auditService.LogDelete(tx, actor.id(), actor.role(), entity.AuditActionOrderDelete, "order", order.ID, order.RegistrationNumber); err != nil {
			return nil, err
		}
		result.Applied = append(result.Applied, id)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}
