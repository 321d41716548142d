package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/validator"
)

type stubOrderUsecase struct {
	listResult   []dto.OrderResponse
	createResult *dto.OrderResponse
	createErr    error
}

func (s *stubOrderUsecase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	return s.listResult, nil
}

func (s *stubOrderUsecase) Get(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	return s.createResult, s.createErr
}

func (s *stubOrderUsecase) Create(ctx context.Context, actor *usecase.Actor, req *dto.OrderRequest) (*dto.OrderResponse, error) {
	return s.createResult, s.createErr
}

func (s *stubOrderUsecase) Update(ctx context.Context, actor *usecase.Actor, id int64, req *dto.OrderRequest) (*dto.OrderResponse, error) {
	return s.createResult, s.createErr
}

func (s *stubOrderUsecase) Delete(ctx context.Context, actor *usecase.Actor, id int64) error {
	return s.createErr
}

func (s *stubOrderUsecase) CreateBulk(ctx context.Context, actor *usecase.Actor, reqs []dto.OrderRequest) ([]dto.OrderResponse, error) {
	return s.listResult, s.createErr
}

func (s *stubOrderUsecase) UpdateBulk(ctx context.Context, actor *usecase.Actor, items []dto.UpdateOrderBulkItem) ([]dto.OrderResponse, error) {
	return s.listResult, s.createErr
}

func (s *stubOrderUsecase) DeleteBulk(ctx context.Context, actor *usecase.Actor, ids []int64) (*dto.BulkIDResult, error) {
	return nil, s.createErr
}

func newOrderHandler(stub *stubOrderUsecase) *OrderHandler {
	return NewOrderHandler(stub, validator.NewValidator())
}

const validOrderBody = `{"registrationNumber":"ORD-001","price":"12.50","quantity":2,"statue":true,"customerId":1,"pharmacistId":1,"deliveryId":1,"productId":1,"prescriptionId":1}`

func TestOrderCreateMissingCustomer(t *testing.T) {
	h := newOrderHandler(&stubOrderUsecase{
		createErr: &usecase.RequiredError{Field: "Customer ID"},
	})

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validOrderBody)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Customer ID is required") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestOrderCreateUnknownProduct(t *testing.T) {
	h := newOrderHandler(&stubOrderUsecase{
		createErr: &usecase.NotFoundError{Entity: "Product"},
	})

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validOrderBody)))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Product not found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestOrderCreateDuplicateRegistrationNumber(t *testing.T) {
	h := newOrderHandler(&stubOrderUsecase{createErr: usecase.ErrRegistrationNumberExists})

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validOrderBody)))

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestOrderCreateValidation(t *testing.T) {
	h := newOrderHandler(&stubOrderUsecase{})

	// quantity below 1 and no statue flag
	body := `{"registrationNumber":"ORD-001","price":"12.50","quantity":0}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestOrderCreateSuccess(t *testing.T) {
	h := newOrderHandler(&stubOrderUsecase{
		createResult: &dto.OrderResponse{ID: 7, RegistrationNumber: "ORD-001"},
	})

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validOrderBody)))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ORD-001") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestOrderIndexEmpty(t *testing.T) {
	h := newOrderHandler(&stubOrderUsecase{})

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No orders found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
