package converter

import (
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
)

func PharmacyToResponse(pharmacy *entity.Pharmacy) *dto.PharmacyResponse {
	return &dto.PharmacyResponse{
		ID:             pharmacy.ID,
		Name:           pharmacy.Name,
		Address:        pharmacy.Address,
		City:           pharmacy.City,
		Picture:        pharmacy.Picture.Picture,
		ImageName:      pharmacy.ImageName,
		ImageSize:      pharmacy.ImageSize,
		ImageUpdatedAt: pharmacy.ImageUpdatedAt,
	}
}

func PharmaciesToResponses(pharmacies []entity.Pharmacy) []dto.PharmacyResponse {
	responses := make([]dto.PharmacyResponse, 0, len(pharmacies))
	for i := range pharmacies {
		responses = append(responses, *PharmacyToResponse(&pharmacies[i]))
	}
	return responses
}

func ProductCategoryToResponse(category *entity.ProductCategory) *dto.ProductCategoryResponse {
	return &dto.ProductCategoryResponse{
		ID:             category.ID,
		Name:           category.Name,
		Picture:        category.Picture.Picture,
		ImageName:      category.ImageName,
		ImageSize:      category.ImageSize,
		ImageUpdatedAt: category.ImageUpdatedAt,
	}
}

func ProductCategoriesToResponses(categories []entity.ProductCategory) []dto.ProductCategoryResponse {
	responses := make([]dto.ProductCategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *ProductCategoryToResponse(&categories[i]))
	}
	return responses
}

func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	response := &dto.ProductResponse{
		ID:                 product.ID,
		Name:               product.Name,
		Description:        product.Description,
		RegistrationNumber: product.RegistrationNumber,
		Price:              product.Price,
		Picture:            product.Picture.Picture,
		ImageName:          product.ImageName,
		ImageSize:          product.ImageSize,
		ImageUpdatedAt:     product.ImageUpdatedAt,
	}
	if product.Category != nil {
		response.Category = ProductCategoryToResponse(product.Category)
	}
	return response
}

func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ProductToResponse(&products[i]))
	}
	return responses
}

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	return &dto.PrescriptionResponse{
		ID:             prescription.ID,
		IssueDate:      prescription.IssueDate.Format("2006-01-02"),
		Picture:        prescription.Picture.Picture,
		ImageName:      prescription.ImageName,
		ImageSize:      prescription.ImageSize,
		ImageUpdatedAt: prescription.ImageUpdatedAt,
	}
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i]))
	}
	return responses
}
