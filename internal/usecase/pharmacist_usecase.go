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

type PharmacistUsecase interface {
	List(ctx context.Context) ([]dto.PharmacistResponse, error)
	Get(ctx context.Context, id int64) (*dto.PharmacistResponse, error)
	Create(ctx context.Context, req *dto.CreatePharmacistRequest) (*dto.PharmacistResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePharmacistRequest) (*dto.PharmacistResponse, error)
	Delete(ctx context.Context, id int64) error
	CreateBulk(ctx context.Context, reqs []dto.CreatePharmacistRequest) ([]dto.PharmacistResponse, error)
	UpdateBulk(ctx context.Context, items []dto.UpdatePharmacistBulkItem) ([]dto.PharmacistResponse, error)
	DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error)
}

type pharmacistUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	pharmacistRepo repository.PharmacistRepository
	pharmacyRepo   repository.PharmacyRepository
}

func NewPharmacistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	pharmacistRepo repository.PharmacistRepository,
	pharmacyRepo repository.PharmacyRepository,
) PharmacistUsecase {
	return &pharmacistUsecase{
		db:             db,
		log:            log,
		pharmacistRepo: pharmacistRepo,
		pharmacyRepo:   pharmacyRepo,
	}
}

func (u *pharmacistUsecase) List(ctx context.Context) ([]dto.PharmacistResponse, error) {
	pharmacists, err := u.pharmacistRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pharmacists: %+v", err)
		return nil, err
	}
	return converter.PharmacistsToResponses(pharmacists), nil
}

func (u *pharmacistUsecase) Get(ctx context.Context, id int64) (*dto.PharmacistResponse, error) {
	pharmacist, err := u.pharmacistRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacist: %+v", err)
		return nil, err
	}
	if pharmacist == nil {
		return nil, &NotFoundError{Entity: "Pharmacist"}
	}
	return converter.PharmacistToResponse(pharmacist), nil
}

func (u *pharmacistUsecase) checkPharmacy(tx *gorm.DB, pharmacyID *int64) error {
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

func (u *pharmacistUsecase) createOne(tx *gorm.DB, req *dto.CreatePharmacistRequest) (*entity.Pharmacist, error) {
	if err := u.checkPharmacy(tx, req.PharmacyID); err != nil {
		return nil, err
	}

	pharmacist := &entity.Pharmacist{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PharmacyID:    req.PharmacyID,
		Roles:         entity.RoleList(req.Roles),
		PlainPassword: req.PlainPassword,
	}

	if err := u.pharmacistRepo.Create(tx, pharmacist); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create pharmacist: %+v", err)
		return nil, err
	}

	return pharmacist, nil
}

func (u *pharmacistUsecase) Create(ctx context.Context, req *dto.CreatePharmacistRequest) (*dto.PharmacistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacist, err := u.createOne(tx, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PharmacistToResponse(pharmacist), nil
}

func (u *pharmacistUsecase) updateOne(tx *gorm.DB, id int64, req *dto.UpdatePharmacistRequest) (*entity.Pharmacist, error) {
	pharmacist, err := u.pharmacistRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacist: %+v", err)
		return nil, err
	}
	if pharmacist == nil {
		return nil, &NotFoundError{Entity: "Pharmacist"}
	}

	if err := u.checkPharmacy(tx, req.PharmacyID); err != nil {
		return nil, err
	}

	pharmacist.FirstName = req.FirstName
	pharmacist.LastName = req.LastName
	pharmacist.Email = req.Email
	pharmacist.PharmacyID = req.PharmacyID
	pharmacist.Pharmacy = nil
	if req.Roles != nil {
		pharmacist.Roles = entity.RoleList(req.Roles)
	}
	if req.PlainPassword != "" {
		pharmacist.PlainPassword = req.PlainPassword
	}

	if err := u.pharmacistRepo.Update(tx, pharmacist); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update pharmacist: %+v", err)
		return nil, err
	}

	return pharmacist, nil
}

func (u *pharmacistUsecase) Update(ctx context.Context, id int64, req *dto.UpdatePharmacistRequest) (*dto.PharmacistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacist, err := u.updateOne(tx, id, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PharmacistToResponse(pharmacist), nil
}

func (u *pharmacistUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacist, err := u.pharmacistRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacist: %+v", err)
		return err
	}
	if pharmacist == nil {
		return &NotFoundError{Entity: "Pharmacist"}
	}

	if err := u.pharmacistRepo.Delete(tx, pharmacist); err != nil {
		u.log.Warnf("Failed to delete pharmacist: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *pharmacistUsecase) CreateBulk(ctx context.Context, reqs []dto.CreatePharmacistRequest) ([]dto.PharmacistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacists := make([]entity.Pharmacist, 0, len(reqs))
	for i := range reqs {
		pharmacist, err := u.createOne(tx, &reqs[i])
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		pharmacists = append(pharmacists, *pharmacist)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PharmacistsToResponses(pharmacists), nil
}

func (u *pharmacistUsecase) UpdateBulk(ctx context.Context, items []dto.UpdatePharmacistBulkItem) ([]dto.PharmacistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacists := make([]entity.Pharmacist, 0, len(items))
	for i := range items {
		pharmacist, err := u.updateOne(tx, items[i].ID, &items[i].UpdatePharmacistRequest)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		pharmacists = append(pharmacists, *pharmacist)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PharmacistsToResponses(pharmacists), nil
}

func (u *pharmacistUsecase) DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		pharmacist, err := u.pharmacistRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find pharmacist: %+v", err)
			return nil, err
		}
		if pharmacist == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if err := u.pharmacistRepo.Delete(tx, pharmacist); err != nil {
			u.log.Warnf("Failed to delete pharmacist: %+v", err)
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
