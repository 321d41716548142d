package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
	"pharmacare-api/pkg/validator"

	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get products")
		return
	}
	if len(products) == 0 {
		response.NotFound(w, "No products found")
		return
	}
	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	product, err := h.productUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get product")
		return
	}
	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

// productRequestFromForm builds the request from multipart form
// fields. Price must parse as a decimal, categoryId as an integer.
func productRequestFromForm(r *http.Request) (*dto.ProductRequest, string) {
	req := &dto.ProductRequest{
		Name:               r.FormValue("name"),
		Description:        r.FormValue("description"),
		RegistrationNumber: r.FormValue("registrationNumber"),
	}

	if raw := r.FormValue("price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, "Invalid price"
		}
		req.Price = price
	}

	if raw := r.FormValue("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "Invalid category ID"
		}
		req.CategoryID = &categoryID
	}

	return req, ""
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req, msg := productRequestFromForm(r)
	if msg != "" {
		response.BadRequest(w, msg)
		return
	}

	if err := h.validator.Validate(req); err != nil {
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

	product, err := h.productUsecase.Create(r.Context(), req, file, header)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create product")
		return
	}
	response.Success(w, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req, msg := productRequestFromForm(r)
	if msg != "" {
		response.BadRequest(w, msg)
		return
	}

	if err := h.validator.Validate(req); err != nil {
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

	product, err := h.productUsecase.Update(r.Context(), id, req, file, header)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update product")
		return
	}
	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	if err := h.productUsecase.Delete(r.Context(), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete product")
		return
	}
	response.Success(w, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.ProductRequest
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

	products, err := h.productUsecase.CreateBulk(r.Context(), reqs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create products")
		return
	}
	response.Success(w, http.StatusCreated, "Products created successfully", products)
}

func (h *ProductHandler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	var items []dto.UpdateProductBulkItem
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

	products, err := h.productUsecase.UpdateBulk(r.Context(), items)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update products")
		return
	}
	response.Success(w, http.StatusOK, "Products updated successfully", products)
}

func (h *ProductHandler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.productUsecase.DeleteBulk(r.Context(), req.IDs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete products")
		return
	}
	response.Success(w, http.StatusOK, "Products deleted successfully", result)
}
