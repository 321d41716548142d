package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestBulkItemErrorMessageAndUnwrap(t *testing.T) {
	err := &BulkItemError{Index: 2, Err: ErrEmailAlreadyExists}

	if err.Error() != "item 2: email already exists" {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Error("wrapped cause not reachable via errors.Is")
	}

	var notFound *NotFoundError
	wrapped := &BulkItemError{Index: 0, Err: &NotFoundError{Entity: "Pharmacy"}}
	if !errors.As(wrapped, &notFound) || notFound.Entity != "Pharmacy" {
		t.Error("wrapped typed error not reachable via errors.As")
	}
}

func TestActorNilSafe(t *testing.T) {
	var actor *Actor

	if actor.id() != nil {
		t.Error("nil actor should have nil id")
	}
	if actor.role() != "" {
		t.Errorf("nil actor role = %q", actor.role())
	}

	actor = &Actor{ID: 7, Role: "ROLE_ADMIN"}
	if id := actor.id(); id == nil || *id != 7 {
		t.Errorf("id = %v", id)
	}
	if actor.role() != "ROLE_ADMIN" {
		t.Errorf("role = %q", actor.role())
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	emailViolation := &pgconn.PgError{Code: "23505", ConstraintName: "idx_customers_email"}

	if !isDuplicateKeyError(emailViolation, "email") {
		t.Error("unique violation on email constraint not detected")
	}
	if !isDuplicateKeyError(fmt.Errorf("create: %w", emailViolation), "email") {
		t.Error("wrapped unique violation not detected")
	}
	if isDuplicateKeyError(emailViolation, "registration_number") {
		t.Error("matched the wrong constraint")
	}
	if isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_customers_email"}, "email") {
		t.Error("non-unique violation treated as duplicate")
	}
	if isDuplicateKeyError(errors.New("plain error"), "email") {
		t.Error("plain error treated as duplicate")
	}
}
