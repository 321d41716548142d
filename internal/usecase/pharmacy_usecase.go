package usecase

import (
	"context"
	"mime/multipart"

	"pharmacare-api/internal/converter"
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/internal/domain/repository"
	"pharmacare-api/internal/infrastructure/storage"
	"pharmacare-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PharmacyUsecase interface {
	List(ctx context.Context) ([]dto.PharmacyResponse, error)
	Get(ctx context.Context, id int64) (*dto.PharmacyResponse, error)
	Create(ctx context.Context, actor *Actor, req *dto.PharmacyRequest, file multipart.File, header *multipart.FileHeader) (*dto.PharmacyResponse, error)
	Update(ctx context.Context, actor *Actor, id int64, req *dto.PharmacyRequest, file multipart.File, header *multipart.FileHeader) (*dto.PharmacyResponse, error)
	Delete(ctx context.Context, actor *Actor, id int64) error
	CreateBulk(ctx context.Context, actor *Actor, reqs []dto.PharmacyRequest) ([]dto.PharmacyResponse, error)
	UpdateBulk(ctx context.Context, actor *Actor, items []dto.UpdatePharmacyBulkItem) ([]dto.PharmacyResponse, error)
	DeleteBulk(ctx context.Context, actor *Actor, ids []int64) (*dto.BulkIDResult, error)
}

type pharmacyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	pharmacyRepo repository.PharmacyRepository
	imageStore   storage.ImageStore
	auditService service.AuditService
}

func NewPharmacyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	pharmacyRepo repository.PharmacyRepository,
	imageStore storage.ImageStore,
	auditService service.AuditService,
) PharmacyUsecase {
	return &pharmacyUsecase{
		db:           db,
		log:          log,
		pharmacyRepo: pharmacyRepo,
		imageStore:   imageStore,
		auditService: auditService,
	}
}

func (u *pharmacyUsecase) List(ctx context.Context) ([]dto.PharmacyResponse, error) {
	pharmacies, err := u.pharmacyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pharmacies: %+v", err)
		return nil, err
	}
	return converter.PharmaciesToResponses(pharmacies), nil
}

func (u *pharmacyUsecase) Get(ctx context.Context, id int64) (*dto.PharmacyResponse, error) {
	pharmacy, err := u.pharmacyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy: %+v", err)
		return nil, err
	}
	if pharmacy == nil {
		return nil, &NotFoundError{Entity: "Pharmacy"}
	}
	return converter.PharmacyToResponse(pharmacy), nil
}

func (u *pharmacyUsecase) attachPicture(pharmacy *entity.Pharmacy, file multipart.File, header *multipart.FileHeader) error {
	if file == nil {
		return nil
	}
	stored, err := u.imageStore.Save(storage.KindPharmacy, file, header)
	if err != nil {
		u.log.Warnf("Failed to store pharmacy picture: %+v", err)
		return err
	}
	pharmacy.SetPicture(stored.PublicPath, stored.Name, stored.Size)
	return nil
}

func (u *pharmacyUsecase) Create(ctx context.Context, actor *Actor, req *dto.PharmacyRequest, file multipart.File, header *multipart.FileHeader) (*dto.PharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacy := &entity.Pharmacy{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	}

	if err := u.attachPicture(pharmacy, file, header); err != nil {
		return nil, err
	}

	if err := u.pharmacyRepo.Create(tx, pharmacy); err != nil {
		u.log.Warnf("Failed to create pharmacy: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actor.id(), actor.role(), entity.AuditActionPharmacyCreate, "pharmacy", pharmacy.ID, pharmacy.Name); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PharmacyToResponse(pharmacy), nil
}

func (u *pharmacyUsecase) applyUpdate(tx *gorm.DB, actor *Actor, id int64, req *dto.PharmacyRequest) (*entity.Pharmacy, error) {
	pharmacy, err := u.pharmacyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy: %+v", err)
		return nil, err
	}
	if pharmacy == nil {
		return nil, &NotFoundError{Entity: "Pharmacy"}
	}

	oldName := pharmacy.Name
	pharmacy.Name = req.Name
	pharmacy.Address = req.Address
	pharmacy.City = req.City

	if err := u.pharmacyRepo.Update(tx, pharmacy); err != nil {
		u.log.Warnf("Failed to update pharmacy: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, actor.id(), actor.role(), entity.AuditActionPharmacyUpdate, "pharmacy", pharmacy.ID, oldName, pharmacy.Name); err != nil {
		return nil, err
	}

	return pharmacy, nil
}

func (u *pharmacyUsecase) Update(ctx context.Context, actor *Actor, id int64, req *dto.PharmacyRequest, file multipart.File, header *multipart.FileHeader) (*dto.PharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacy, err := u.pharmacyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy: %+v", err)
		return nil, err
	}
	if pharmacy == nil {
		return nil, &NotFoundError{Entity: "Pharmacy"}
	}

	oldName := pharmacy.Name
	pharmacy.Name = req.Name
	pharmacy.Address = req.Address
	pharmacy.City = req.City

	if err := u.attachPicture(pharmacy, file, header); err != nil {
		return nil, err
	}

	if err := u.pharmacyRepo.Update(tx, pharmacy); err != nil {
		u.log.Warnf("Failed to update pharmacy: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, actor.id(), actor.role(), entity.AuditActionPharmacyUpdate, "pharmacy", pharmacy.ID, oldName, pharmacy.Name); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PharmacyToResponse(pharmacy), nil
}

func (u *pharmacyUsecase) Delete(ctx context.Context, actor *Actor, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacy, err := u.pharmacyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy: %+v", err)
		return err
	}
	if pharmacy == nil {
		return &NotFoundError{Entity: "Pharmacy"}
	}

	if err := u.pharmacyRepo.Delete(tx, pharmacy); err != nil {
		u.log.Warnf("Failed to delete pharmacy: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actor.id(), actor.role(), entity.AuditActionPharmacyDelete, "pharmacy", pharmacy.ID, pharmacy.Name); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// CreateBulk creates pharmacies from JSON bodies without pictures, all
// in one transaction.
func (u *pharmacyUsecase) CreateBulk(ctx context.Context, actor *Actor, reqs []dto.PharmacyRequest) ([]dto.PharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacies := make([]entity.Pharmacy, 0, len(reqs))
	for i := range reqs {
		pharmacy := &entity.Pharmacy{
			Name:    reqs[i].Name,
			Address: reqs[i].Address,
			City:    reqs[i].City,
		}
		if err := u.pharmacyRepo.Create(tx, pharmacy); err != nil {
			u.log.Warnf("Failed to create pharmacy: %+v", err)
			return nil, &BulkItemError{Index: i, Err: err}
		}
		if err := u.auditService.LogCreate(tx, actor.id(), actor.role(), entity.AuditActionPharmacyCreate, "pharmacy", pharmacy.ID, pharmacy.Name); err != nil {
			return nil, err
		}
		pharmacies = append(pharmacies, *pharmacy)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PharmaciesToResponses(pharmacies), nil
}

func (u *pharmacyUsecase) UpdateBulk(ctx context.Context, actor *Actor, items []dto.UpdatePharmacyBulkItem) ([]dto.PharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacies := make([]entity.Pharmacy, 0, len(items))
	for i := range items {
		pharmacy, err := u.applyUpdate(tx, actor, items[i].ID, &items[i].PharmacyRequest)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		pharmacies = append(pharmacies, *pharmacy)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PharmaciesToResponses(pharmacies), nil
}

func (u *pharmacyUsecase) DeleteBulk(ctx context.Context, actor *Actor, ids []int64) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		pharmacy, err := u.pharmacyRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find pharmacy: %+v", err)
			return nil, err
		}
		if pharmacy == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if err := u.pharmacyRepo.Delete(tx, pharmacy); err != nil {
			u.log.Warnf("Failed to delete pharmacy: %+v", err)
			return nil, err
		}

		if err := u.auditService.LogDelete(tx, actor.id(), actor.role(), entity.AuditActionPharmacyDelete, "pharmacy", pharmacy.ID, pharmacy.Name); err != nil {
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
