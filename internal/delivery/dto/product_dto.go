package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name               string          `json:"name" validate:"required,max=100"`
	Description        string          `json:"description"`
	RegistrationNumber string          `json:"registrationNumber" validate:"required,max=100"`
	Price              decimal.Decimal `json:"price" validate:"required"`
	CategoryID         *int64          `json:"categoryId"`
}

type UpdateProductBulkItem struct {
	ID int64 `json:"id" validate:"required"`
	ProductRequest
}

type ProductResponse struct {
	ID                 int64                    `json:"id"`
	Name               string                   `json:"name"`
	Description        string                   `json:"description,omitempty"`
	RegistrationNumber string                   `json:"registrationNumber"`
	Price              decimal.Decimal          `json:"price"`
	Picture            string                   `json:"picture,omitempty"`
	ImageName          string                   `json:"imageName,omitempty"`
	ImageSize          int64                    `json:"imageSize,omitempty"`
	ImageUpdatedAt     *time.Time               `json:"imageUpdatedAt,omitempty"`
	Category           *ProductCategoryResponse `json:"category,omitempty"`
}
