package handler

import (
	"encoding/json"
	"net/http"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
	"pharmacare-api/pkg/validator"
)

type CustomerHandler struct {
	customerUsecase usecase.CustomerUsecase
	validator       *validator.CustomValidator
}

func NewCustomerHandler(customerUsecase usecase.CustomerUsecase, validator *validator.CustomValidator) *CustomerHandler {
	return &CustomerHandler{
		customerUsecase: customerUsecase,
		validator:       validator,
	}
}

func (h *CustomerHandler) Index(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get customers")
		return
	}
	if len(customers) == 0 {
		response.NotFound(w, "No customers found")
		return
	}
	response.Success(w, http.StatusOK, "Customers retrieved successfully", customers)
}

func (h *CustomerHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	customer, err := h.customerUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get customer")
		return
	}
	response.Success(w, http.StatusOK, "Customer retrieved successfully", customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	customer, err := h.customerUsecase.Create(r.Context(), actorFromContext(r), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create customer")
		return
	}
	response.Success(w, http.StatusCreated, "Customer created successfully", customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	var req dto.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	customer, err := h.customerUsecase.Update(r.Context(), actorFromContext(r), id, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update customer")
		return
	}
	response.Success(w, http.StatusOK, "Customer updated successfully", customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	if err := h.customerUsecase.Delete(r.Context(), actorFromContext(r), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete customer")
		return
	}
	response.Success(w, http.StatusOK, "Customer deleted successfully", nil)
}

func (h *CustomerHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true, "Customer blocked successfully")
}

func (h *CustomerHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false, "Customer unblocked successfully")
}

func (h *CustomerHandler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool, message string) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid customer ID")
		return
	}

	customer, err := h.customerUsecase.SetBlocked(r.Context(), actorFromContext(r), id, blocked)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update customer")
		return
	}
	response.Success(w, http.StatusOK, message, customer)
}

func (h *CustomerHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []dto.CreateCustomerRequest
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

	customers, err := h.customerUsecase.CreateBulk(r.Context(), actorFromContext(r), reqs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create customers")
		return
	}
	response.Success(w, http.StatusCreated, "Customers created successfully", customers)
}

func (h *CustomerHandler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	var items []dto.UpdateCustomerBulkItem
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

	customers, err := h.customerUsecase.UpdateBulk(r.Context(), actorFromContext(r), items)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update customers")
		return
	}
	response.Success(w, http.StatusOK, "Customers updated successfully", customers)
}

func (h *CustomerHandler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.customerUsecase.DeleteBulk(r.Context(), actorFromContext(r), req.IDs)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete customers")
		return
	}
	response.Success(w, http.StatusOK, "Customers deleted successfully", result)
}

func (h *CustomerHandler) BlockBulk(w http.ResponseWriter, r *http.Request) {
	h.setBlockedBulk(w, r, true, "Customers blocked successfully")
}

func (h *CustomerHandler) UnblockBulk(w http.ResponseWriter, r *http.Request) {
	h.setBlockedBulk(w, r, false, "Customers unblocked successfully")
}

func (h *CustomerHandler) setBlockedBulk(w http.ResponseWriter, r *http.Request, blocked bool, message string) {
	var req dto.IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.customerUsecase.SetBlockedBulk(r.Context(), actorFromContext(r), req.IDs, blocked)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update customers")
		return
	}
	response.Success(w, http.StatusOK, message, result)
}
