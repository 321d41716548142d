package handler

import (
	"encoding/json"
	"net/http"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
	"pharmacare-api/pkg/validator"
)

type AdminPharmacyHandler struct {
	adminUsecase usecase.AdminPharmacyUsecase
	validator    *validator.CustomValidator
}

func NewAdminPharmacyHandler(adminUsecase usecase.AdminPharmacyUsecase, validator *validator.CustomValidator) *AdminPharmacyHandler {
	return &AdminPharmacyHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

func (h *AdminPharmacyHandler) Index(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get pharmacy admins")
		return
	}
	if len(admins) == 0 {
		response.NotFound(w, "No admin pharmacies found")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy admins retrieved successfully", admins)
}

func (h *AdminPharmacyHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid admin pharmacy ID")
		return
	}

	admin, err := h.adminUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get pharmacy admin")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy admin retrieved successfully", admin)
}

func (h *AdminPharmacyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdminPharmacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.adminUsecase.Create(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create pharmacy admin")
		return
	}
	response.Success(w, http.StatusCreated, "Pharmacy admin created successfully", admin)
}

func (h *AdminPharmacyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid admin pharmacy ID")
		return
	}

	var req dto.UpdateAdminPharmacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.adminUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update pharmacy admin")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy admin updated successfully", admin)
}

func (h *AdminPharmacyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid admin pharmacy ID")
		return
	}

	if err := h.adminUsecase.Delete(r.Context(), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete pharmacy admin")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy admin deleted successfully", nil)
}

func (h *AdminPharmacyHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.CreateAdminPharmacyRequest
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

	admins, err := h.adminUsecase.CreateBulk(r.Context(), reqs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create pharmacy admins")
		return
	}
	response.Success(w, http.StatusCreated, "Pharmacy admins created successfully", admins)
}

func (h *AdminPharmacyHandler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	var items []dto.UpdateAdminPharmacyBulkItem
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

	admins, err := h.adminUsecase.UpdateBulk(r.Context(), items)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update pharmacy admins")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy admins updated successfully", admins)
}

func (h *AdminPharmacyHandler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.adminUsecase.DeleteBulk(r.Context(), req.IDs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete pharmacy admins")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy admins deleted successfully", result)
}
