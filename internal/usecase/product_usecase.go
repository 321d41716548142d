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

type ProductUsecase interface {
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Get(ctx context.Context, id int64) (*dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.ProductRequest, file multipart.File, header *multipart.FileHeader) (*dto.ProductResponse, error)
	Update(ctx context.Context, id int64, req *dto.ProductRequest, file multipart.File, header *multipart.FileHeader) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
	CreateBulk(ctx context.Context, reqs []dto.ProductRequest) ([]dto.ProductResponse, error)
	UpdateBulk(ctx context.Context, items []dto.UpdateProductBulkItem) ([]dto.ProductResponse, error)
	DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error)
}

type productUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	productRepo  repository.ProductRepository
	categoryRepo repository.ProductCategoryRepository
	imageStore   storage.ImageStore
}

func NewProductUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	categoryRepo repository.ProductCategoryRepository,
	imageStore storage.ImageStore,
) ProductUsecase {
	return &productUsecase{
		db:           db,
		log:          log,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageStore:   imageStore,
	}
}

func (u *productUsecase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := u.productRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}
	return converter.ProductsToResponses(products), nil
}

func (u *productUsecase) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, &NotFoundError{Entity: "Product"}
	}
	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) checkCategory(tx *gorm.DB, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	category, err := u.categoryRepo.FindByID(tx, *categoryID)
	if err != nil {
		u.log.Warnf("Failed to find product category: %+v", err)
		return err
	}
	if category == nil {
		return &NotFoundError{Entity: "Category"}
	}
	return nil
}

func (u *productUsecase) attachPicture(product *entity.Product, file multipart.File, header *multipart.FileHeader) error {
	if file == nil {
		return nil
	}
	stored, err := u.imageStore.Save(storage.KindProduct, file, header)
	if err != nil {
		u.log.Warnf("Failed to store product picture: %+v", err)
		return err
	}
	product.SetPicture(stored.PublicPath, stored.Name, stored.Size)
	return nil
}

func (u *productUsecase) createOne(tx *gorm.DB, req *dto.ProductRequest) (*entity.Product, error) {
	if err := u.checkCategory(tx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:               req.Name,
		Description:        req.Description,
		RegistrationNumber: req.RegistrationNumber,
		Price:              req.Price,
		CategoryID:         req.CategoryID,
	}

	if err := u.productRepo.Create(tx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	return product, nil
}

func (u *productUsecase) Create(ctx context.Context, req *dto.ProductRequest, file multipart.File, header *multipart.FileHeader) (*dto.ProductResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkCategory(tx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:               req.Name,
		Description:        req.Description,
		RegistrationNumber: req.RegistrationNumber,
		Price:              req.Price,
		CategoryID:         req.CategoryID,
	}

	if err := u.attachPicture(product, file, header); err != nil {
		return nil, err
	}

	if err := u.productRepo.Create(tx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) updateOne(tx *gorm.DB, id int64, req *dto.ProductRequest) (*entity.Product, error) {
	product, err := u.productRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, &NotFoundError{Entity: "Product"}
	}

	if err := u.checkCategory(tx, req.CategoryID); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.RegistrationNumber = req.RegistrationNumber
	product.Price = req.Price
	product.CategoryID = req.CategoryID
	product.Category = nil

	if err := u.productRepo.Update(tx, product); err != nil {
		u.log.Warnf("Failed to update product: %+v", err)
		return nil, err
	}

	return product, nil
}

func (u *productUsecase) Update(ctx context.Context, id int64, req *dto.ProductRequest, file multipart.File, header *multipart.FileHeader) (*dto.ProductResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	product, err := u.productRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, &NotFoundError{Entity: "Product"}
	}

	if err := u.checkCategory(tx, req.CategoryID); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.RegistrationNumber = req.RegistrationNumber
	product.Price = req.Price
	product.CategoryID = req.CategoryID
	product.Category = nil

	if err := u.attachPicture(product, file, header); err != nil {
		return nil, err
	}

	if err := u.productRepo.Update(tx, product); err != nil {
		u.log.Warnf("Failed to update product: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	product, err := u.productRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return err
	}
	if product == nil {
		return &NotFoundError{Entity: "Product"}
	}

	if err := u.productRepo.Delete(tx, product); err != nil {
		u.log.Warnf("Failed to delete product: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *productUsecase) CreateBulk(ctx context.Context, reqs []dto.ProductRequest) ([]dto.ProductResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	products := make([]entity.Product, 0, len(reqs))
	for i := range reqs {
		product, err := u.createOne(tx, &reqs[i])
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		products = append(products, *product)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProductsToResponses(products), nil
}

func (u *productUsecase) UpdateBulk(ctx context.Context, items []dto.UpdateProductBulkItem) ([]dto.ProductResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	products := make([]entity.Product, 0, len(items))
	for i := range items {
		product, err := u.updateOne(tx, items[i].ID, &items[i].ProductRequest)
		if err != nil {
			return nil, &BulkItemError{Index: i, Err: err}
		}
		products = append(products, *product)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProductsToResponses(products), nil
}

func (u *productUsecase) DeleteBulk(ctx context.Context, ids []int64) (*dto.BulkIDResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &dto.BulkIDResult{Applied: []int64{}}
	for _, id := range ids {
		product, err := u.productRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find product: %+v", err)
			return nil, err
		}
		if product == nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}

		if err := u.productRepo.Delete(tx, product); err != nil {
			u.log.Warnf("Failed to delete product: %+v", err)
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
