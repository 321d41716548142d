package dto

import "time"

type ProductCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateProductCategoryBulkItem struct {
	ID int64 `json:"id" validate:"required"`
	ProductCategoryRequest
}

type ProductCategoryResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Picture        string     `json:"picture,omitempty"`
	ImageName      string     `json:"imageName,omitempty"`
	ImageSize      int64      `json:"imageSize,omitempty"`
	ImageUpdatedAt *time.Time `json:"imageUpdatedAt,omitempty"`
}
