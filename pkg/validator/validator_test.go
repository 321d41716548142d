package validator

import "testing"

type sampleRequest struct {
	Email           string `validate:"required,email"`
	PlainPassword   string `validate:"required,min=6,eqfield=ConfirmPassword"`
	ConfirmPassword string
	Quantity        int `validate:"gte=1"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	req := sampleRequest{
		Email:           "jane@example.com",
		PlainPassword:   "secret123",
		ConfirmPassword: "secret123",
		Quantity:        2,
	}
	if err := cv.Validate(&req); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	req := sampleRequest{
		Email:           "not-an-email",
		PlainPassword:   "secret123",
		ConfirmPassword: "different",
		Quantity:        0,
	}

	err := cv.Validate(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	errs := cv.FormatValidationErrors(err)

	if got := errs["Email"]; got != "Email must be a valid email address" {
		t.Errorf("Email = %q", got)
	}
	if got := errs["PlainPassword"]; got != "PlainPassword must match ConfirmPassword" {
		t.Errorf("PlainPassword = %q", got)
	}
	if got := errs["Quantity"]; got != "Quantity must be greater than or equal to 1" {
		t.Errorf("Quantity = %q", got)
	}
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Quantity: 1})
	if err == nil {
		t.Fatal("expected validation error")
	}

	errs := cv.FormatValidationErrors(err)
	if got := errs["Email"]; got != "Email is required" {
		t.Errorf("Email = %q", got)
	}
	if got := errs["PlainPassword"]; got != "PlainPassword is required" {
		t.Errorf("PlainPassword = %q", got)
	}
}
