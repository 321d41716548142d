package dto

import "time"

// PharmacyRequest covers create and edit. Single-item endpoints read it
// from multipart form fields so a picture can ride along; bulk
// endpoints read it from JSON without pictures.
type PharmacyRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=255"`
	City    string `json:"city" validate:"required,max=100"`
}

type UpdatePharmacyBulkItem struct {
	ID int64 `json:"id" validate:"required"`
	PharmacyRequest
}

type PharmacyResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	Picture        string     `json:"picture,omitempty"`
	ImageName      string     `json:"imageName,omitempty"`
	ImageSize      int64      `json:"imageSize,omitempty"`
	ImageUpdatedAt *time.Time `json:"imageUpdatedAt,omitempty"`
}
