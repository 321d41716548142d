package usecase

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"pharmacare-api/internal/converter"
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/internal/domain/repository"
	"pharmacare-api/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

type PrescriptionUsecase interface {
	List(ctx context.Context) ([]dto.PrescriptionResponse, error)
	Get(ctx context.Context, id int64) (*dto.PrescriptionResponse, error)
	Create(ctx context.Context, req *dto.PrescriptionRequest, file multipart.File, header *multipart.FileHeader) (*dto.PrescriptionResponse, error)
	Update(ctx context.Context, id int64, req *dto.PrescriptionRequest, file multipart.File, header *multipart.FileHeader) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, id int64) error
	CreateBulk(ctx context.Context, reqs []dto.PrescriptionRequest) ([]dto.PrescriptionResponse, error)
	UpdateBulk(ctx context.Context, items []dto.UpdatePrescriptionBulkItem) ([]dto.PrescriptionResponse, error)
	DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	imageStore       storage.ImageStore
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	imageStore storage.ImageStore,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		imageStore:       imageStore,
	}
}

func (u *prescriptionUsecase) List(ctx context.Context) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) Get(ctx context.Context, id int64) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, &NotFoundError{Entity: "Prescription"}
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) attachPicture(prescription *entity.Prescription, file multipart.File, header *multipart.FileHeader) error {
	if file == nil {
		return nil
	}
	stored, err := u.imageStore.Save(storage.KindPrescription, file, header)
	if err != nil {
		u.log.Warnf("Failed to store prescription picture: %+v", err)
		return err
	}
	prescription.SetPicture(stored.PublicPath, stored.Name, stored.Size)
	return nil
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.PrescriptionRequest, file multipart.File, header *multipart.FileHeader) (*dto.PrescriptionResponse, error) {
	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription := &entity.Prescription{IssueDate: issueDate}

	if err := u.attachPicture(prescription, file, header); err != nil {
		return nil, err
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) updateOne(tx *gorm.DB, id int64, req *dto.PrescriptionRequest) (*entity.Prescription, error) {
	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	prescription, err := u.prescriptionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, &NotFoundError{Entity: "Prescription"}
	}

	prescription.IssueDate = issueDate

	if err := u.prescriptionRepo.Update(tx, prescription); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	return prescription, nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, id int64, req *dto.PrescriptionRequest, file multipart.File, header *multipart.FileHeader) (*dto.PrescriptionResponse, error) {
	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, &NotFoundError{Entity: "Prescription"}
	}

	prescription.IssueDate = issueDate

	if err := u.attachPicture(prescription, file, header); err != nil {
		return nil, err
	}

	if err := u.prescriptionRepo.Update(tx, prescription); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return err
	}
	if prescription == nil {
		return &NotFoundError{Entity: "Prescription"}
	}

	if err := u.prescriptionRepo.Delete(tx, prescription); err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *prescriptionUsecase) CreateBulk(ctx context.Context, reqs []dto.PrescriptionRequest) ([]dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescriptions := make([]entity.Prescription, 0, len(reqs))
	for i := range reqs {
		issueDate, err := time.Parse("2006-01-02", reqs[i].IssueDate)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: ErrInvalidDateFormat}
		}

		prescription := &entity.Prescription{IssueDate: issueDate}
		if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
			u.log.Warnf("Failed to create prescription: %+v", err)
			return nil, &BulkItemError{Index: i, Err: err}
		}
		prescriptions = append(prescriptions, *prescription)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) UpdateBulk(ctx context.Context, items []dto.UpdatePrescriptionBulkItem) ([]dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescriptions := make([]entity.Prescription, 0, len(items))
	for i := range items {
		prescription, err := u.updateOne(tx, items[i].ID, &items[i].PrescriptionRequest)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		prescriptions = append(prescriptions, *prescription)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		prescription, err := u.prescriptionRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find prescription: %+v", err)
			return nil, err
		}
		if prescription == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if err := u.prescriptionRepo.Delete(tx, prescription); err != nil {
			u.log.Warnf("Failed to delete prescription: %+v", err)
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
