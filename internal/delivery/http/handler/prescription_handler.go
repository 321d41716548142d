package handler

import (
	"encoding/json"
	"net/http"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
	"pharmacare-api/pkg/validator"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) Index(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.prescriptionUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get prescriptions")
		return
	}
	if len(prescriptions) == 0 {
		response.NotFound(w, "No prescriptions found")
		return
	}
	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *PrescriptionHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	prescription, err := h.prescriptionUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get prescription")
		return
	}
	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.PrescriptionRequest{IssueDate: r.FormValue("issueDate")}

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

	prescription, err := h.prescriptionUsecase.Create(r.Context(), &req, file, header)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create prescription")
		return
	}
	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.PrescriptionRequest{IssueDate: r.FormValue("issueDate")}

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

	prescription, err := h.prescriptionUsecase.Update(r.Context(), id, &req, file, header)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update prescription")
		return
	}
	response.Success(w, http.StatusOK, "Prescription updated successfully", prescription)
}

func (h *PrescriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	if err := h.prescriptionUsecase.Delete(r.Context(), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete prescription")
		return
	}
	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}

func (h *PrescriptionHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.PrescriptionRequest
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

	prescriptions, err := h.prescriptionUsecase.CreateBulk(r.Context(), reqs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create prescriptions")
		return
	}
	response.Success(w, http.StatusCreated, "Prescriptions created successfully", prescriptions)
}

func (h *PrescriptionHandler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	var items []dto.UpdatePrescriptionBulkItem
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

	prescriptions, err := h.prescriptionUsecase.UpdateBulk(r.Context(), items)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update prescriptions")
		return
	}
	response.Success(w, http.StatusOK, "Prescriptions updated successfully", prescriptions)
}

func (h *PrescriptionHandler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.prescriptionUsecase.DeleteBulk(r.Context(), req.IDs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete prescriptions")
		return
	}
	response.Success(w, http.StatusOK, "Prescriptions deleted successfully", result)
}
