package handler

import (
	"encoding/json"
	"net/http"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
	"pharmacare-api/pkg/validator"
)

type PharmacistHandler struct {
	pharmacistUsecase usecase.PharmacistUsecase
	validator         *validator.CustomValidator
}

func NewPharmacistHandler(pharmacistUsecase usecase.PharmacistUsecase, validator *validator.CustomValidator) *PharmacistHandler {
	return &PharmacistHandler{
		pharmacistUsecase: pharmacistUsecase,
		validator:         validator,
	}
}

func (h *PharmacistHandler) Index(w http.ResponseWriter, r *http.Request) {
	pharmacists, err := h.pharmacistUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get pharmacists")
		return
	}
	if len(pharmacists) == 0 {
		response.NotFound(w, "No pharmacists found")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacists retrieved successfully", pharmacists)
}

func (h *PharmacistHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid pharmacist ID")
		return
	}

	pharmacist, err := h.pharmacistUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get pharmacist")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacist retrieved successfully", pharmacist)
}

func (h *PharmacistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePharmacistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pharmacist, err := h.pharmacistUsecase.Create(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create pharmacist")
		return
	}
	response.Success(w, http.StatusCreated, "Pharmacist created successfully", pharmacist)
}

func (h *PharmacistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid pharmacist ID")
		return
	}

	var req dto.UpdatePharmacistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pharmacist, err := h.pharmacistUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update pharmacist")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacist updated successfully", pharmacist)
}

func (h *PharmacistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid pharmacist ID")
		return
	}

	if err := h.pharmacistUsecase.Delete(r.Context(), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete pharmacist")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacist deleted successfully", nil)
}

func (h *PharmacistHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.CreatePharmacistRequest
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

	pharmacists, err := h.pharmacistUsecase.CreateBulk(r.Context(), reqs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create pharmacists")
		return
	}
	response.Success(w, http.StatusCreated, "Pharmacists created successfully", pharmacists)
}

func (h *PharmacistHandler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	var items []dto.UpdatePharmacistBulkItem
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

	pharmacists, err := h.pharmacistUsecase.UpdateBulk(r.Context(), items)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update pharmacists")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacists updated successfully", pharmacists)
}

func (h *PharmacistHandler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.pharmacistUsecase.DeleteBulk(r.Context(), req.IDs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete pharmacists")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacists deleted successfully", result)
}
