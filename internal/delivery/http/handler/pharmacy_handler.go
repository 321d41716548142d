package handler

import (
	"encoding/json"
	"net/http"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
	"pharmacare-api/pkg/validator"
)

type PharmacyHandler struct {
	pharmacyUsecase usecase.PharmacyUsecase
	validator       *validator.CustomValidator
}

func NewPharmacyHandler(pharmacyUsecase usecase.PharmacyUsecase, validator *validator.CustomValidator) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUsecase: pharmacyUsecase,
		validator:       validator,
	}
}

func (h *PharmacyHandler) Index(w http.ResponseWriter, r *http.Request) {
	pharmacies, err := h.pharmacyUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get pharmacies")
		return
	}
	if len(pharmacies) == 0 {
		response.NotFound(w, "No pharmacies found")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacies retrieved successfully", pharmacies)
}

func (h *PharmacyHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid pharmacy ID")
		return
	}

	pharmacy, err := h.pharmacyUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get pharmacy")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy retrieved successfully", pharmacy)
}

// Create reads a multipart form so an optional picture can be
// uploaded together with the pharmacy fields.
func (h *PharmacyHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.PharmacyRequest{
		Name:    r.FormValue("name"),
		Address: r.FormValue("address"),
		City:    r.FormValue("city"),
	}

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

	pharmacy, err := h.pharmacyUsecase.Create(r.Context(), actorFromContext(r), &req, file, header)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create pharmacy")
		return
	}
	response.Success(w, http.StatusCreated, "Pharmacy created successfully", pharmacy)
}

func (h *PharmacyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid pharmacy ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.PharmacyRequest{
		Name:    r.FormValue("name"),
		Address: r.FormValue("address"),
		City:    r.FormValue("city"),
	}

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

	pharmacy, err := h.pharmacyUsecase.Update(r.Context(), actorFromContext(r), id, &req, file, header)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update pharmacy")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy updated successfully", pharmacy)
}

func (h *PharmacyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid pharmacy ID")
		return
	}

	if err := h.pharmacyUsecase.Delete(r.Context(), actorFromContext(r), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete pharmacy")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy deleted successfully", nil)
}

func (h *PharmacyHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.PharmacyRequest
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

	pharmacies, err := h.pharmacyUsecase.CreateBulk(r.Context(), actorFromContext(r), reqs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create pharmacies")
		return
	}
	response.Success(w, http.StatusCreated, "Pharmacies created successfully", pharmacies)
}

func (h *PharmacyHandler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	var items []dto.UpdatePharmacyBulkItem
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

	pharmacies, err := h.pharmacyUsecase.UpdateBulk(r.Context(), actorFromContext(r), items)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update pharmacies")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacies updated successfully", pharmacies)
}

func (h *PharmacyHandler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.pharmacyUsecase.DeleteBulk(r.Context(), actorFromContext(r), req.IDs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete pharmacies")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacies deleted successfully", result)
}
