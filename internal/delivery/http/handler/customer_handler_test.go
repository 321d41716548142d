package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/validator"

	"github.com/gorilla/mux"
)

// stubCustomerUsecase returns canned values per method.
type stubCustomerUsecase struct {
	listResult       []dto.CustomerResponse
	listErr          error
	getResult        *dto.CustomerResponse
	getErr           error
	createResult     *dto.CustomerResponse
	createErr        error
	createBulkErr    error
	deleteBulkResult *dto.BulkIDResult
}

func (s *stubCustomerUsecase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	return s.listResult, s.listErr
}

func (s *stubCustomerUsecase) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	return s.getResult, s.getErr
}

func (s *stubCustomerUsecase) Create(ctx context.Context, actor *usecase.Actor, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	return s.createResult, s.createErr
}

func (s *stubCustomerUsecase) Update(ctx context.Context, actor *usecase.Actor, id int64, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	return s.getResult, s.getErr
}

func (s *stubCustomerUsecase) Delete(ctx context.Context, actor *usecase.Actor, id int64) error {
	return s.getErr
}

func (s *stubCustomerUsecase) SetBlocked(ctx context.Context, actor *usecase.Actor, id int64, blocked bool) (*dto.CustomerResponse, error) {
	return s.getResult, s.getErr
}

func (s *stubCustomerUsecase) CreateBulk(ctx context.Context, actor *usecase.Actor, reqs []dto.CreateCustomerRequest) ([]dto.CustomerResponse, error) {
	return s.listResult, s.createBulkErr
}

func (s *stubCustomerUsecase) UpdateBulk(ctx context.Context, actor *usecase.Actor, items []dto.UpdateCustomerBulkItem) ([]dto.CustomerResponse, error) {
	return s.listResult, s.createBulkErr
}

func (s *stubCustomerUsecase) DeleteBulk(ctx context.Context, actor *usecase.Actor, ids []int64) (*dto.BulkIDResult, error) {
	return s.deleteBulkResult, s.listErr
}

func (s *stubCustomerUsecase) SetBlockedBulk(ctx context.Context, actor *usecase.Actor, ids []int64, blocked bool) (*dto.BulkIDResult, error) {
	return s.deleteBulkResult, s.listErr
}

func newCustomerHandler(stub *stubCustomerUsecase) *CustomerHandler {
	return NewCustomerHandler(stub, validator.NewValidator())
}

func TestCustomerIndexEmpty(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{})

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No customers found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCustomerIndex(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{
		listResult: []dto.CustomerResponse{{ID: 1, Email: "jane@example.com"}},
	})

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "jane@example.com") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCustomerShowInvalidID(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{})

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/customers/abc", nil), map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.Show(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCustomerCreateValidation(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{})

	body := `{"firstName":"Jane","lastName":"Doe","email":"not-an-email","phoneNumber":"123","address":"Street","plainPassword":"secret123","password":"secret123"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email must be a valid email address") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCustomerCreatePasswordMismatch(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{})

	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phoneNumber":"123","address":"Street","plainPassword":"secret123","password":"different"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestCustomerCreateConflict(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{createErr: usecase.ErrEmailAlreadyExists})

	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phoneNumber":"123","address":"Street","plainPassword":"secret123","password":"secret123"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body)))

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestCustomerCreateBulkEmptyBatch(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{})

	rec := httptest.NewRecorder()
	h.CreateBulk(rec, httptest.NewRequest(http.MethodPost, "/api/customers/bulk", strings.NewReader(`[]`)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Empty batch") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCustomerCreateBulkItemConflict(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{
		createBulkErr: &usecase.BulkItemError{Index: 1, Err: usecase.ErrEmailAlreadyExists},
	})

	body := `[{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phoneNumber":"123","address":"Street","plainPassword":"secret123","password":"secret123"}]`
	rec := httptest.NewRecorder()
	h.CreateBulk(rec, httptest.NewRequest(http.MethodPost, "/api/customers/bulk", strings.NewReader(body)))

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "item 1: email already exists") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCustomerDeleteBulkReportsSkipped(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{
		deleteBulkResult: &dto.BulkIDResult{Applied: []int64{1, 3}, Skipped: []int64{2}},
	})

	rec := httptest.NewRecorder()
	h.DeleteBulk(rec, httptest.NewRequest(http.MethodDelete, "/api/customers/bulk", strings.NewReader(`{"ids":[1,2,3]}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data dto.BulkIDResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Data.Applied) != 2 || len(body.Data.Skipped) != 1 || body.Data.Skipped[0] != 2 {
		t.Errorf("result = %+v", body.Data)
	}
}

func TestCustomerDeleteBulkRequiresIDs(t *testing.T) {
	h := newCustomerHandler(&stubCustomerUsecase{})

	rec := httptest.NewRecorder()
	h.DeleteBulk(rec, httptest.NewRequest(http.MethodDelete, "/api/customers/bulk", strings.NewReader(`{}`)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}
