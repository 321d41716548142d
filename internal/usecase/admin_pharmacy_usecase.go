package usecase

import (
	"context"

	"pharmacare-api/internal/converter"
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminPharmacyUsecase interface {
	List(ctx context.Context) ([]dto.AdminPharmacyResponse, error)
	Get(ctx context.Context, id int64) (*dto.AdminPharmacyResponse, error)
	Create(ctx context.Context, req *dto.CreateAdminPharmacyRequest) (*dto.AdminPharmacyResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAdminPharmacyRequest) (*dto.AdminPharmacyResponse, error)
	Delete(ctx context.Context, id int64) error
	CreateBulk(ctx context.Context, reqs []dto.CreateAdminPharmacyRequest) ([]dto.AdminPharmacyResponse, error)
	UpdateBulk(ctx context.Context, items []dto.UpdateAdminPharmacyBulkItem) ([]dto.AdminPharmacyResponse, error)
	DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error)
}

type adminPharmacyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminRepo    repository.AdminPharmacyRepository
	pharmacyRepo repository.PharmacyRepository
}

func NewAdminPharmacyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adminRepo repository.AdminPharmacyRepository,
	pharmacyRepo repository.PharmacyRepository,
) AdminPharmacyUsecase {
	return &adminPharmacyUsecase{
		db:           db,
		log:          log,
		adminRepo:    adminRepo,
		pharmacyRepo: pharmacyRepo,
	}
}

func (u *adminPharmacyUsecase) List(ctx context.Context) ([]dto.AdminPharmacyResponse, error) {
	admins, err := u.adminRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pharmacy admins: %+v", err)
		return nil, err
	}
	return converter.AdminPharmaciesToResponses(admins), nil
}

func (u *adminPharmacyUsecase) Get(ctx context.Context, id int64) (*dto.AdminPharmacyResponse, error) {
	admin, err := u.adminRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, &NotFoundError{Entity: "AdminPharmacy"}
	}
	return converter.AdminPharmacyToResponse(admin), nil
}

func (u *adminPharmacyUsecase) checkPharmacy(tx *gorm.DB, pharmacyID *int64) error {
	if pharmacyID == nil {
		return nil
	}
	pharmacy, err := u.pharmacyRepo.FindByID(tx, *pharmacyID)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy: %+v", err)
		return err
	}
	if pharmacy == nil {
		return &NotFoundError{Entity: "Pharmacy"}
	}
	return nil
}

func (u *adminPharmacyUsecase) createOne(tx *gorm.DB, req *dto.CreateAdminPharmacyRequest) (*entity.AdminPharmacy, error) {
	if err := u.checkPharmacy(tx, req.PharmacyID); err != nil {
		return nil, err
	}

	admin := &entity.AdminPharmacy{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PharmacyID:    req.PharmacyID,
		Roles:         entity.RoleList(req.Roles),
		PlainPassword: req.PlainPassword,
	}

	if err := u.adminRepo.Create(tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create pharmacy admin: %+v", err)
		return nil, err
	}

	return admin, nil
}

func (u *adminPharmacyUsecase) Create(ctx context.Context, req *dto.CreateAdminPharmacyRequest) (*dto.AdminPharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.createOne(tx, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AdminPharmacyToResponse(admin), nil
}

func (u *adminPharmacyUsecase) updateOne(tx *gorm.DB, id int64, req *dto.UpdateAdminPharmacyRequest) (*entity.AdminPharmacy, error) {
	admin, err := u.adminRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, &NotFoundError{Entity: "AdminPharmacy"}
	}

	if err := u.checkPharmacy(tx, req.PharmacyID); err != nil {
		return nil, err
	}

	admin.FirstName = req.FirstName
	admin.LastName = req.LastName
	admin.Email = req.Email
	admin.PharmacyID = req.PharmacyID
	admin.Pharmacy = nil
	if req.Roles != nil {
		admin.Roles = entity.RoleList(req.Roles)
	}
	if req.PlainPassword != "" {
		admin.PlainPassword = req.PlainPassword
	}

	if err := u.adminRepo.Update(tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update pharmacy admin: %+v", err)
		return nil, err
	}

	return admin, nil
}

func (u *adminPharmacyUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAdminPharmacyRequest) (*dto.AdminPharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.updateOne(tx, id, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AdminPharmacyToResponse(admin), nil
}

func (u *adminPharmacyUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy admin: %+v", err)
		return err
	}
	if admin == nil {
		return &NotFoundError{Entity: "AdminPharmacy"}
	}

	if err := u.adminRepo.Delete(tx, admin); err != nil {
		u.log.Warnf("Failed to delete pharmacy admin: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *adminPharmacyUsecase) CreateBulk(ctx context.Context, reqs []dto.CreateAdminPharmacyRequest) ([]dto.AdminPharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admins := make([]entity.AdminPharmacy, 0, len(reqs))
	for i := range reqs {
		admin, err := u.createOne(tx, &reqs[i])
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		admins = append(admins, *admin)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AdminPharmaciesToResponses(admins), nil
}

func (u *adminPharmacyUsecase) UpdateBulk(ctx context.Context, items []dto.UpdateAdminPharmacyBulkItem) ([]dto.AdminPharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admins := make([]entity.AdminPharmacy, 0, len(items))
	for i := range items {
		admin, err := u.updateOne(tx, items[i].ID, &items[i].UpdateAdminPharmacyRequest)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		admins = append(admins, *admin)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AdminPharmaciesToResponses(admins), nil
}

func (u *adminPharmacyUsecase) DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		admin, err := u.adminRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find pharmacy admin: %+v", err)
			return nil, err
		}
		if admin == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if err := u.adminRepo.Delete(tx, admin); err != nil {
			u.log.Warnf("Failed to delete pharmacy admin: %+v", err)
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
