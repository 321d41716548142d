package handler

import (
	"encoding/json"
	"net/http"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
	"pharmacare-api/pkg/validator"
)

type ProductCategoryHandler struct {
	categoryUsecase usecase.ProductCategoryUsecase
	validator       *validator.CustomValidator
}

func NewProductCategoryHandler(categoryUsecase usecase.ProductCategoryUsecase, validator *validator.CustomValidator) *ProductCategoryHandler {
	return &ProductCategoryHandler{
		categoryUsecase: categoryUsecase,
		validator:       validator,
	}
}

func (h *ProductCategoryHandler) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get categories")
		return
	}
	if len(categories) == 0 {
		response.NotFound(w, "No categories found")
		return
	}
	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *ProductCategoryHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	category, err := h.categoryUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get category")
		return
	}
	response.Success(w, http.StatusOK, "Category retrieved successfully", category)
}

func (h *ProductCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.ProductCategoryRequest{Name: r.FormValue("name")}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	file, header, err := formFile(r, "picture")
	if err != nil {
		response.BadRequest(w, "Invalid picture upload")
		return
	}
	if file != nil {
		defer file.Close()
	}

	category, err := h.categoryUsecase.Create(r.Context(), &req, file, header)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create category")
		return
	}
	response.Success(w, http.StatusCreated, "Category created successfully", category)
}

func (h *ProductCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.ProductCategoryRequest{Name: r.FormValue("name")}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	file, header, err := formFile(r, "picture")
	if err != nil {
		response.BadRequest(w, "Invalid picture upload")
		return
	}
	if file != nil {
		defer file.Close()
	}

	category, err := h.categoryUsecase.Update(r.Context(), id, &req, file, header)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update category")
		return
	}
	response.Success(w, http.StatusOK, "Category updated successfully", category)
}

func (h *ProductCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	if err := h.categoryUsecase.Delete(r.Context(), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete category")
		return
	}
	response.Success(w, http.StatusOK, "Category deleted successfully", nil)
}

func (h *ProductCategoryHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.ProductCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if len(reqs) == 0 {
		response.BadRequest(w, "Empty batch")
		return
	}

	for i := range reqs {
		if err := h.validator.Validate(&reqs[i]); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
	}

	categories, err := h.categoryUsecase.CreateBulk(r.Context(), reqs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create categories")
		return
	}
	response.Success(w, http.StatusCreated, "Categories created successfully", categories)
}

func (h *ProductCategoryHandler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	var items []dto.UpdateProductCategoryBulkItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if len(items) == 0 {
		response.BadRequest(w, "Empty batch")
		return
	}

	for i := range items {
		if err := h.validator.Validate(&items[i]); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
	}

	categories, err := h.categoryUsecase.UpdateBulk(r.Context(), items)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update categories")
		return
	}
	response.Success(w, http.StatusOK, "Categories updated successfully", categories)
}

func (h *ProductCategoryHandler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.categoryUsecase.DeleteBulk(r.Context(), req.IDs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete categories")
		return
	}
	response.Success(w, http.StatusOK, "Categories deleted successfully", result)
}
