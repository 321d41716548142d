package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/jwt"
	"pharmacare-api/pkg/validator"
)

type stubAuthUsecase struct {
	loginResult         *dto.LoginResponse
	loginErr            error
	loginCustomerResult *dto.CustomerLoginResponse
	loginCustomerErr    error
	refreshResult       *dto.RefreshTokenResponse
	refreshErr          error
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthUsecase) LoginCustomer(ctx context.Context, req *dto.RoleLoginRequest) (*dto.CustomerLoginResponse, error) {
	return s.loginCustomerResult, s.loginCustomerErr
}

func (s *stubAuthUsecase) LoginDelivery(ctx context.Context, req *dto.RoleLoginRequest) (*dto.DeliveryLoginResponse, error) {
	return nil, s.loginCustomerErr
}

func (s *stubAuthUsecase) LoginPharmacist(ctx context.Context, req *dto.RoleLoginRequest) (*dto.PharmacistLoginResponse, error) {
	return nil, s.loginCustomerErr
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	return s.refreshResult, s.refreshErr
}

func (s *stubAuthUsecase) Logout(ctx context.Context, identity jwt.Identity, accessTokenID string) error {
	return nil
}

func newAuthHandler(stub *stubAuthUsecase) *AuthHandler {
	return NewAuthHandler(stub, validator.NewValidator())
}

func TestLoginSuccess(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{
		loginResult: &dto.LoginResponse{
			UserID: 1,
			Email:  "admin@example.com",
			Roles:  []string{"ROLE_ADMIN"},
			Token:  "access",
		},
	})

	body := `{"username":"admin@example.com","password":"secret123"}`
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "admin@example.com") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestLoginMissingFields(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{})

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{}`)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{
		loginErr: &usecase.NotFoundError{Entity: "User"},
	})

	body := `{"username":"ghost@example.com","password":"secret123"}`
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body)))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{loginErr: usecase.ErrInvalidCredentials})

	body := `{"username":"admin@example.com","password":"wrong"}`
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body)))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Incorrect password") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestLoginCustomerBlocked(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{loginCustomerErr: usecase.ErrAccountBlocked})

	body := `{"email":"jane@example.com","password":"secret123"}`
	rec := httptest.NewRecorder()
	h.LoginCustomer(rec, httptest.NewRequest(http.MethodPost, "/api/login/customer", strings.NewReader(body)))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Your account is blocked") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestLoginCustomerInvalidEmail(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{})

	body := `{"email":"not-an-email","password":"secret123"}`
	rec := httptest.NewRecorder()
	h.LoginCustomer(rec, httptest.NewRequest(http.MethodPost, "/api/login/customer", strings.NewReader(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestRefreshTokenRevoked(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{refreshErr: usecase.ErrTokenRevoked})

	body := `{"refresh_token":"some-token"}`
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, httptest.NewRequest(http.MethodPost, "/api/auth/refresh-token", strings.NewReader(body)))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLogoutWithoutIdentity(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{})

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
