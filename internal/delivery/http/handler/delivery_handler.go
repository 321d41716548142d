package handler

import (
	"encoding/json"
	"net/http"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
	"pharmacare-api/pkg/validator"
)

type DeliveryHandler struct {
	deliveryUsecase usecase.DeliveryUsecase
	validator       *validator.CustomValidator
}

func NewDeliveryHandler(deliveryUsecase usecase.DeliveryUsecase, validator *validator.CustomValidator) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUsecase: deliveryUsecase,
		validator:       validator,
	}
}

func (h *DeliveryHandler) Index(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.deliveryUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get deliveries")
		return
	}
	if len(deliveries) == 0 {
		response.NotFound(w, "No deliveries found")
		return
	}
	response.Success(w, http.StatusOK, "Deliveries retrieved successfully", deliveries)
}

func (h *DeliveryHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid delivery ID")
		return
	}

	delivery, err := h.deliveryUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get delivery")
		return
	}
	response.Success(w, http.StatusOK, "Delivery retrieved successfully", delivery)
}

func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	delivery, err := h.deliveryUsecase.Create(r.Context(), actorFromContext(r), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create delivery")
		return
	}
	response.Success(w, http.StatusCreated, "Delivery created successfully", delivery)
}

func (h *DeliveryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid delivery ID")
		return
	}

	var req dto.UpdateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	delivery, err := h.deliveryUsecase.Update(r.Context(), actorFromContext(r), id, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update delivery")
		return
	}
	response.Success(w, http.StatusOK, "Delivery updated successfully", delivery)
}

func (h *DeliveryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid delivery ID")
		return
	}

	if err := h.deliveryUsecase.Delete(r.Context(), actorFromContext(r), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete delivery")
		return
	}
	response.Success(w, http.StatusOK, "Delivery deleted successfully", nil)
}

func (h *DeliveryHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true, "Delivery blocked successfully")
}

func (h *DeliveryHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false, "Delivery unblocked successfully")
}

func (h *DeliveryHandler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool, message string) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid delivery ID")
		return
	}

	delivery, err := h.deliveryUsecase.SetBlocked(r.Context(), actorFromContext(r), id, blocked)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update delivery")
		return
	}
	response.Success(w, http.StatusOK, message, delivery)
}

func (h *DeliveryHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.CreateDeliveryRequest
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

	deliveries, err := h.deliveryUsecase.CreateBulk(r.Context(), actorFromContext(r), reqs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create deliveries")
		return
	}
	response.Success(w, http.StatusCreated, "Deliveries created successfully", deliveries)
}

func (h *DeliveryHandler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	var items []dto.UpdateDeliveryBulkItem
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

	deliveries, err := h.deliveryUsecase.UpdateBulk(r.Context(), actorFromContext(r), items)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update deliveries")
		return
	}
	response.Success(w, http.StatusOK, "Deliveries updated successfully", deliveries)
}

func (h *DeliveryHandler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.deliveryUsecase.DeleteBulk(r.Context(), actorFromContext(r), req.IDs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete deliveries")
		return
	}
	response.Success(w, http.StatusOK, "Deliveries deleted successfully", result)
}

func (h *DeliveryHandler) BlockBulk(w http.ResponseWriter, r *http.Request) {
	h.setBlockedBulk(w, r, true, "Deliveries blocked successfully")
}

func (h *DeliveryHandler) UnblockBulk(w http.ResponseWriter, r *http.Request) {
	h.setBlockedBulk(w, r, false, "Deliveries unblocked successfully")
}

func (h *DeliveryHandler) setBlockedBulk(w http.ResponseWriter, r *http.Request, blocked bool, message string) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.deliveryUsecase.SetBlockedBulk(r.Context(), actorFromContext(r), req.IDs, blocked)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update deliveries")
		return
	}
	response.Success(w, http.StatusOK, message, result)
}
