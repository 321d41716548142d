package usecase

import (
	"context"
	"mime/multipart"

	"pharmacare-api/internal/converter"
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/internal/domain/repository"
	"pharmacare-api/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProductCategoryUsecase interface {
	List(ctx context.Context) ([]dto.ProductCategoryResponse, error)
	Get(ctx context.Context, id int64) (*dto.ProductCategoryResponse, error)
	Create(ctx context.Context, req *dto.ProductCategoryRequest, file multipart.File, header *multipart.FileHeader) (*dto.ProductCategoryResponse, error)
	Update(ctx context.Context, id int64, req *dto.ProductCategoryRequest, file multipart.File, header *multipart.FileHeader) (*dto.ProductCategoryResponse, error)
	Delete(ctx context.Context, id int64) error
	CreateBulk(ctx context.Context, reqs []dto.ProductCategoryRequest) ([]dto.ProductCategoryResponse, error)
	UpdateBulk(ctx context.Context, items []dto.UpdateProductCategoryBulkItem) ([]dto.ProductCategoryResponse, error)
	DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error)
}

type productCategoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.ProductCategoryRepository
	imageStore   storage.ImageStore
}

func NewProductCategoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	categoryRepo repository.ProductCategoryRepository,
	imageStore storage.ImageStore,
) ProductCategoryUsecase {
	return &productCategoryUsecase{
		db:           db,
		log:          log,
		categoryRepo: categoryRepo,
		imageStore:   imageStore,
	}
}

func (u *productCategoryUsecase) List(ctx context.Context) ([]dto.ProductCategoryResponse, error) {
	categories, err := u.categoryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list product categories: %+v", err)
		return nil, err
	}
	return converter.ProductCategoriesToResponses(categories), nil
}

func (u *productCategoryUsecase) Get(ctx context.Context, id int64) (*dto.ProductCategoryResponse, error) {
	category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find product category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Entity: "Category"}
	}
	return converter.ProductCategoryToResponse(category), nil
}

func (u *productCategoryUsecase) attachPicture(category *entity.ProductCategory, file multipart.File, header *multipart.FileHeader) error {
	if file == nil {
		return nil
	}
	stored, err := u.imageStore.Save(storage.KindCategory, file, header)
	if err != nil {
		u.log.Warnf("Failed to store category picture: %+v", err)
		return err
	}
	category.SetPicture(stored.PublicPath, stored.Name, stored.Size)
	return nil
}

func (u *productCategoryUsecase) Create(ctx context.Context, req *dto.ProductCategoryRequest, file multipart.File, header *multipart.FileHeader) (*dto.ProductCategoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	category := &entity.ProductCategory{Name: req.Name}

	if err := u.attachPicture(category, file, header); err != nil {
		return nil, err
	}

	if err := u.categoryRepo.Create(tx, category); err != nil {
		u.log.Warnf("Failed to create product category: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProductCategoryToResponse(category), nil
}

func (u *productCategoryUsecase) updateOne(tx *gorm.DB, id int64, req *dto.ProductCategoryRequest) (*entity.ProductCategory, error) {
	category, err := u.categoryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find product category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Entity: "Category"}
	}

	category.Name = req.Name

	if err := u.categoryRepo.Update(tx, category); err != nil {
		u.log.Warnf("Failed to update product category: %+v", err)
		return nil, err
	}

	return category, nil
}

func (u *productCategoryUsecase) Update(ctx context.Context, id int64, req *dto.ProductCategoryRequest, file multipart.File, header *multipart.FileHeader) (*dto.ProductCategoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	category, err := u.categoryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find product category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Entity: "Category"}
	}

	category.Name = req.Name

	if err := u.attachPicture(category, file, header); err != nil {
		return nil, err
	}

	if err := u.categoryRepo.Update(tx, category); err != nil {
		u.log.Warnf("Failed to update product category: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProductCategoryToResponse(category), nil
}

func (u *productCategoryUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	category, err := u.categoryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find product category: %+v", err)
		return err
	}
	if category == nil {
		return &NotFoundError{Entity: "Category"}
	}

	if err := u.categoryRepo.Delete(tx, category); err != nil {
		u.log.Warnf("Failed to delete product category: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *productCategoryUsecase) CreateBulk(ctx context.Context, reqs []dto.ProductCategoryRequest) ([]dto.ProductCategoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	categories := make([]entity.ProductCategory, 0, len(reqs))
	for i := range reqs {
		category := &entity.ProductCategory{Name: reqs[i].Name}
		if err := u.categoryRepo.Create(tx, category); err != nil {
			u.log.Warnf("Failed to create product category: %+v", err)
			return nil, &BulkItemError{Index: i, Err: err}
		}
		categories = append(categories, *category)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProductCategoriesToResponses(categories), nil
}

func (u *productCategoryUsecase) UpdateBulk(ctx context.Context, items []dto.UpdateProductCategoryBulkItem) ([]dto.ProductCategoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	categories := make([]entity.ProductCategory, 0, len(items))
	for i := range items {
		category, err := u.updateOne(tx, items[i].ID, &items[i].ProductCategoryRequest)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		categories = append(categories, *category)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProductCategoriesToResponses(categories), nil
}

func (u *productCategoryUsecase) DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		category, err := u.categoryRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find product category: %+v", err)
			return nil, err
		}
		if category == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if err := u.categoryRepo.Delete(tx, category); err != nil {
			u.log.Warnf("Failed to delete product category: %+v", err)
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
