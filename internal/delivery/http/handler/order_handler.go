package handler

import (
	"encoding/json"
	"net/http"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
	"pharmacare-api/pkg/validator"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
	validator    *validator.CustomValidator
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase, validator *validator.CustomValidator) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

func (h *OrderHandler) Index(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get orders")
		return
	}
	if len(orders) == 0 {
		response.NotFound(w, "No orders found")
		return
	}
	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid order ID")
		return
	}

	order, err := h.orderUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get order")
		return
	}
	response.Success(w, http.StatusOK, "Order retrieved successfully", order)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.Create(r.Context(), actorFromContext(r), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create order")
		return
	}
	response.Success(w, http.StatusCreated, "Order created successfully", order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid order ID")
		return
	}

	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.Update(r.Context(), actorFromContext(r), id, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update order")
		return
	}
	response.Success(w, http.StatusOK, "Order updated successfully", order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid order ID")
		return
	}

	if err := h.orderUsecase.Delete(r.Context(), actorFromContext(r), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete order")
		return
	}
	response.Success(w, http.StatusOK, "Order deleted successfully", nil)
}

func (h *OrderHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.OrderRequest
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

	orders, err := h.orderUsecase.CreateBulk(r.Context(), actorFromContext(r), reqs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create orders")
		return
	}
	response.Success(w, http.StatusCreated, "Orders created successfully", orders)
}

func (h *OrderHandler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	var items []dto.UpdateOrderBulkItem
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

	orders, err := h.orderUsecase.UpdateBulk(r.Context(), actorFromContext(r), items)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update orders")
		return
	}
	response.Success(w, http.StatusOK, "Orders updated successfully", orders)
}

func (h *OrderHandler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.orderUsecase.DeleteBulk(r.Context(), actorFromContext(r), req.IDs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete orders")
		return
	}
	response.Success(w, http.StatusOK, "Orders deleted successfully", result)
}
