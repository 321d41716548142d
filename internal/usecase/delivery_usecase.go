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

type DeliveryUsecase interface {
	List(ctx context.Context) ([]dto.DeliveryResponse, error)
	Get(ctx context.Context, id int64) (*dto.DeliveryResponse, error)
	Create(ctx context.Context, actor *Actor, req *dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error)
	Update(ctx context.Context, actor *Actor, id int64, req *dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error)
	Delete(ctx context.Context, actor *Actor, id int64) error
	SetBlocked(ctx context.Context, actor *Actor, id int64, blocked bool) (*dto.DeliveryResponse, error)
	CreateBulk(ctx context.Context, actor *Actor, reqs []dto.CreateDeliveryRequest) ([]dto.DeliveryResponse, error)
	UpdateBulk(ctx context.Context, actor *Actor, items []dto.UpdateDeliveryBulkItem) ([]dto.DeliveryResponse, error)
	DeleteBulk(ctx context.Context, actor *Actor, ids []int64) (*dto.BulkIDResult, error)
	SetBlockedBulk(ctx context.Context, actor *Actor, ids []int64, blocked bool) (*dto.BulkIDResult, error)
}

type deliveryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	deliveryRepo repository.DeliveryRepository
	auditService service.AuditService
}

func NewDeliveryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	deliveryRepo repository.DeliveryRepository,
	auditService service.AuditService,
) DeliveryUsecase {
	return &deliveryUsecase{
		db:           db,
		log:          log,
		deliveryRepo: deliveryRepo,
		auditService: auditService,
	}
}

func (u *deliveryUsecase) List(ctx context.Context) ([]dto.DeliveryResponse, error) {
	deliveries, err := u.deliveryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list delivery agents: %+v", err)
		return nil, err
	}
	return converter.DeliveriesToResponses(deliveries), nil
}

func (u *deliveryUsecase) Get(ctx context.Context, id int64) (*dto.DeliveryResponse, error) {
	delivery, err := u.deliveryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find delivery agent: %+v", err)
		return nil, err
	}
	if delivery == nil {
		return nil, &NotFoundError{Entity: "Delivery"}
	}
	return converter.DeliveryToResponse(delivery), nil
}

func (u *deliveryUsecase) createOne(tx *gorm.DB, actor *Actor, req *dto.CreateDeliveryRequest) (*entity.Delivery, error) {
	delivery := &entity.Delivery{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Roles:         entity.RoleList(req.Roles),
		PlainPassword: req.PlainPassword,
	}

	if err := u.deliveryRepo.Create(tx, delivery); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create delivery agent: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actor.id(), actor.role(), entity.AuditActionDeliveryCreate, "delivery", delivery.ID, delivery.Email); err != nil {
		return nil, err
	}

	return delivery, nil
}

func (u *deliveryUsecase) Create(ctx context.Context, actor *Actor, req *dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	delivery, err := u.createOne(tx, actor, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DeliveryToResponse(delivery), nil
}

func (u *deliveryUsecase) updateOne(tx *gorm.DB, actor *Actor, id int64, req *dto.UpdateDeliveryRequest) (*entity.Delivery, error) {
	delivery, err := u.deliveryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find delivery agent: %+v", err)
		return nil, err
	}
	if delivery == nil {
		return nil, &NotFoundError{Entity: "Delivery"}
	}

	oldEmail := delivery.Email

	delivery.FirstName = req.FirstName
	delivery.LastName = req.LastName
	delivery.Email = req.Email
	delivery.PhoneNumber = req.PhoneNumber
	if req.Roles != nil {
		delivery.Roles = entity.RoleList(req.Roles)
	}
	if req.PlainPassword != "" {
		delivery.PlainPassword = req.PlainPassword
	}

	if err := u.deliveryRepo.Update(tx, delivery); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update delivery agent: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, actor.id(), actor.role(), entity.AuditActionDeliveryUpdate, "delivery", delivery.ID, oldEmail, delivery.Email); err != nil {
		return nil, err
	}

	return delivery, nil
}

func (u *deliveryUsecase) Update(ctx context.Context, actor *Actor, id int64, req *dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	delivery, err := u.updateOne(tx, actor, id, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DeliveryToResponse(delivery), nil
}

func (u *deliveryUsecase) Delete(ctx context.Context, actor *Actor, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	delivery, err := u.deliveryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find delivery agent: %+v", err)
		return err
	}
	if delivery == nil {
		return &NotFoundError{Entity: "Delivery"}
	}

	if err := u.deliveryRepo.Delete(tx, delivery); err != nil {
		u.log.Warnf("Failed to delete delivery agent: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actor.id(), actor.role(), entity.AuditActionDeliveryDelete, "delivery", delivery.ID, delivery.Email); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *deliveryUsecase) SetBlocked(ctx context.Context, actor *Actor, id int64, blocked bool) (*dto.DeliveryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	delivery, err := u.deliveryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find delivery agent: %+v", err)
		return nil, err
	}
	if delivery == nil {
		return nil, &NotFoundError{Entity: "Delivery"}
	}

	delivery.Blocked = blocked
	if err := u.deliveryRepo.Update(tx, delivery); err != nil {
		u.log.Warnf("Failed to update delivery agent: %+v", err)
		return nil, err
	}

	action := entity.AuditActionDeliveryBlock
	if !blocked {
		action = entity.AuditActionDeliveryUnblock
	}
	if err := u.auditService.LogUpdate(tx, actor.id(), actor.role(), action, "delivery", delivery.ID, !blocked, blocked); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DeliveryToResponse(delivery), nil
}

func (u *deliveryUsecase) CreateBulk(ctx context.Context, actor *Actor, reqs []dto.CreateDeliveryRequest) ([]dto.DeliveryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	deliveries := make([]entity.Delivery, 0, len(reqs))
	for i := range reqs {
		delivery, err := u.createOne(tx, actor, &reqs[i])
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		deliveries = append(deliveries, *delivery)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DeliveriesToResponses(deliveries), nil
}

func (u *deliveryUsecase) UpdateBulk(ctx context.Context, actor *Actor, items []dto.UpdateDeliveryBulkItem) ([]dto.DeliveryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	deliveries := make([]entity.Delivery, 0, len(items))
	for i := range items {
		delivery, err := u.updateOne(tx, actor, items[i].ID, &items[i].UpdateDeliveryRequest)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		deliveries = append(deliveries, *delivery)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DeliveriesToResponses(deliveries), nil
}

func (u *deliveryUsecase) DeleteBulk(ctx context.Context, actor *Actor, ids []int64) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		delivery, err := u.deliveryRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find delivery agent: %+v", err)
			return nil, err
		}
		if delivery == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if err := u.deliveryRepo.Delete(tx, delivery); err != nil {
			u.log.Warnf("Failed to delete delivery agent: %+v", err)
			return nil, err
		}

		if err := u.auditService.LogDelete(tx, actor.id(), actor.role(), entity.AuditActionDeliveryDelete, "delivery", delivery.ID, delivery.Email); err != nil {
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

func (u *deliveryUsecase) SetBlockedBulk(ctx context.Context, actor *Actor, ids []int64, blocked bool) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	action := entity.AuditActionDeliveryBlock
	if !blocked {
		action = entity.AuditActionDeliveryUnblock
	}

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		delivery, err := u.deliveryRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find delivery agent: %+v", err)
			return nil, err
		}
		if delivery == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		delivery.Blocked = blocked
		if err := u.deliveryRepo.Update(tx, delivery); err != nil {
			u.log.Warnf("Failed to update delivery agent: %+v", err)
			return nil, err
		}

		if err := u.auditService.LogUpdate(tx, actor.id(), actor.role(), action, "delivery", delivery.ID, !blocked, blocked); err != nil {
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
