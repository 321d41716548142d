package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"pharmacare-api/internal/usecase"
)

func TestUsecaseErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid credentials",
			err:        usecase.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Incorrect password",
		},
		{
			name:       "blocked account",
			err:        usecase.ErrAccountBlocked,
			wantStatus: http.StatusForbidden,
			wantMsg:    "Your account is blocked",
		},
		{
			name:       "revoked token",
			err:        usecase.ErrTokenRevoked,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "token has been revoked",
		},
		{
			name:       "duplicate email",
			err:        usecase.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantMsg:    "email already exists",
		},
		{
			name:       "duplicate registration number",
			err:        usecase.ErrRegistrationNumberExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "wrong current password",
			err:        usecase.ErrWrongPassword,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "current password is incorrect",
		},
		{
			name:       "missing entity",
			err:        &usecase.NotFoundError{Entity: "Pharmacy"},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Pharmacy not found",
		},
		{
			name:       "missing reference",
			err:        &usecase.RequiredError{Field: "Customer ID"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Customer ID is required",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("create: %w", &usecase.NotFoundError{Entity: "Category"}),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Category not found",
		},
		{
			name:       "unknown error falls back",
			err:        errors.New("database is down"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to create customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := usecaseErrorStatus(tt.err, "Failed to create customer")
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if tt.wantMsg != "" && msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestUsecaseErrorStatusBulkItem(t *testing.T) {
	err := &usecase.BulkItemError{Index: 2, Err: usecase.ErrEmailAlreadyExists}

	status, msg := usecaseErrorStatus(err, "Failed to create customers")
	if status != http.StatusConflict {
		t.Errorf("status = %d, want %d", status, http.StatusConflict)
	}
	if msg != "item 2: email already exists" {
		t.Errorf("message = %q", msg)
	}
}

func TestUsecaseErrorStatusBulkItemNotFound(t *testing.T) {
	err := &usecase.BulkItemError{Index: 0, Err: &usecase.NotFoundError{Entity: "Pharmacy"}}

	status, msg := usecaseErrorStatus(err, "Failed to update pharmacists")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", status, http.StatusNotFound)
	}
	if msg != "item 0: Pharmacy not found" {
		t.Errorf("message = %q", msg)
	}
}
