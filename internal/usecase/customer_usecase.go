package usecase

import (
	"context"

	"pharmacare-api/internal/converter"
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/internal/domain/repository"
	"pharmacare-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CustomerUsecase interface {
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Get(ctx context.Context, id int64) (*dto.CustomerResponse, error)
	Create(ctx context.Context, actor *Actor, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Update(ctx context.Context, actor *Actor, id int64, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, actor *Actor, id int64) error
	SetBlocked(ctx context.Context, actor *Actor, id int64, blocked bool) (*dto.CustomerResponse, error)
	CreateBulk(ctx context.Context, actor *Actor, reqs []dto.CreateCustomerRequest) ([]dto.CustomerResponse, error)
	UpdateBulk(ctx context.Context, actor *Actor, items []dto.UpdateCustomerBulkItem) ([]dto.CustomerResponse, error)
	DeleteBulk(ctx context.Context, actor *Actor, ids []int64) (*dto.BulkIDResult, error)
	SetBlockedBulk(ctx context.Context, actor *Actor, ids []int64, blocked bool) (*dto.BulkIDResult, error)
}

type customerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	customerRepo repository.CustomerRepository
	auditService service.AuditService
}

func NewCustomerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	customerRepo repository.CustomerRepository,
	auditService service.AuditService,
) CustomerUsecase {
	return &customerUsecase{
		db:           db,
		log:          log,
		customerRepo: customerRepo,
		auditService: auditService,
	}
}

func (u *customerUsecase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := u.customerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list customers: %+v", err)
		return nil, err
	}
	return converter.CustomersToResponses(customers), nil
}

func (u *customerUsecase) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	customer, err := u.customerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, &NotFoundError{Entity: "Customer"}
	}
	return converter.CustomerToResponse(customer), nil
}

func (u *customerUsecase) createOne(tx *gorm.DB, actor *Actor, req *dto.CreateCustomerRequest) (*entity.Customer, error) {
	customer := &entity.Customer{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Roles:         entity.RoleList(req.Roles),
		PlainPassword: req.PlainPassword,
	}

	if err := u.customerRepo.Create(tx, customer); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create customer: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actor.id(), actor.role(), entity.AuditActionCustomerCreate, "customer", customer.ID, customer.Email); err != nil {
		return nil, err
	}

	return customer, nil
}

func (u *customerUsecase) Create(ctx context.Context, actor *Actor, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	customer, err := u.createOne(tx, actor, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CustomerToResponse(customer), nil
}

func (u *customerUsecase) updateOne(tx *gorm.DB, actor *Actor, id int64, req *dto.UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := u.customerRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, &NotFoundError{Entity: "Customer"}
	}

	oldEmail := customer.Email

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.PhoneNumber = req.PhoneNumber
	customer.Address = req.Address
	if req.Roles != nil {
		customer.Roles = entity.RoleList(req.Roles)
	}
	if req.PlainPassword != "" {
		customer.PlainPassword = req.PlainPassword
	}

	if err := u.customerRepo.Update(tx, customer); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update customer: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, actor.id(), actor.role(), entity.AuditActionCustomerUpdate, "customer", customer.ID, oldEmail, customer.Email); err != nil {
		return nil, err
	}

	return customer, nil
}

func (u *customerUsecase) Update(ctx context.Context, actor *Actor, id int64, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	customer, err := u.updateOne(tx, actor, id, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CustomerToResponse(customer), nil
}

func (u *customerUsecase) Delete(ctx context.Context, actor *Actor, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	customer, err := u.customerRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return err
	}
	if customer == nil {
		return &NotFoundError{Entity: "Customer"}
	}

	if err := u.customerRepo.Delete(tx, customer); err != nil {
		u.log.Warnf("Failed to delete customer: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actor.id(), actor.role(), entity.AuditActionCustomerDelete, "customer", customer.ID, customer.Email); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *customerUsecase) SetBlocked(ctx context.Context, actor *Actor, id int64, blocked bool) (*dto.CustomerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	customer, err := u.customerRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, &NotFoundError{Entity: "Customer"}
	}

	customer.Blocked = blocked
	if err := u.customerRepo.Update(tx, customer); err != nil {
		u.log.Warnf("Failed to update customer: %+v", err)
		return nil, err
	}

	action := entity.AuditActionCustomerBlock
	if !blocked {
		action = entity.AuditActionCustomerUnblock
	}
	if err := u.auditService.LogUpdate(tx, actor.id(), actor.role(), action, "customer", customer.ID, !blocked, blocked); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CustomerToResponse(customer), nil
}

// CreateBulk creates the whole batch in one transaction. Any failing
// item rolls back everything and reports its position.
func (u *customerUsecase) CreateBulk(ctx context.Context, actor *Actor, reqs []dto.CreateCustomerRequest) ([]dto.CustomerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	customers := make([]entity.Customer, 0, len(reqs))
	for i := range reqs {
		customer, err := u.createOne(tx, actor, &reqs[i])
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		customers = append(customers, *customer)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CustomersToResponses(customers), nil
}

// UpdateBulk edits the whole batch in one transaction, all or nothing.
func (u *customerUsecase) UpdateBulk(ctx context.Context, actor *Actor, items []dto.UpdateCustomerBulkItem) ([]dto.CustomerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	customers := make([]entity.Customer, 0, len(items))
	for i := range items {
		customer, err := u.updateOne(tx, actor, items[i].ID, &items[i].UpdateCustomerRequest)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		customers = append(customers, *customer)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CustomersToResponses(customers), nil
}

// DeleteBulk removes every resolvable id and reports the ones that no
// longer exist. All removals land in a single commit.
func (u *customerUsecase) DeleteBulk(ctx context.Context, actor *Actor, ids []int64) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		customer, err := u.customerRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find customer: %+v", err)
			return nil, err
		}
		if customer == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if err := u.customerRepo.Delete(tx, customer); err != nil {
			u.log.Warnf("Failed to delete customer: %+v", err)
			return nil, err
		}

		if err := u.auditService.LogDelete(tx, actor.id(), actor.role(), entity.AuditActionCustomerDelete, "customer", customer.ID, customer.Email); err != nil {
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

// SetBlockedBulk flips the blocked flag for every resolvable id,
// skipping and reporting missing ones, in a single commit.
func (u *customerUsecase) SetBlockedBulk(ctx context.Context, actor *Actor, ids []int64, blocked bool) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	action := entity.AuditActionCustomerBlock
	if !blocked {
		action = entity.AuditActionCustomerUnblock
	}

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		customer, err := u.customerRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find customer: %+v", err)
			return nil, err
		}
		if customer == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		customer.Blocked = blocked
		if err := u.customerRepo.Update(tx, customer); err != nil {
			u.log.Warnf("Failed to update customer: %+v", err)
			return nil, err
		}

		if err := u.auditService.LogUpdate(tx, actor.id(), actor.role(), action, "customer", customer.ID, !blocked, blocked); err != nil {
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
