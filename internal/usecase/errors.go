package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidCredentials = errors.New("Incorrect password")
	ErrAccountBlocked     = errors.New("Your account is blocked")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// NotFoundError reports a missing entity or foreign key.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// RequiredError reports a missing required reference on a request body.
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return e.Field + " is required"
}

// BulkItemError wraps the failure of one item of a bulk request. Bulk
// create/edit are all-or-nothing: the first failing item aborts and
// rolls back the whole batch.
type BulkItemError struct {
	Index int
	Err   error
}

func (e *BulkItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *BulkItemError) Unwrap() error {
	return e.Err
}

// Actor identifies the authenticated principal performing a mutation,
// for the audit trail.
type Actor struct {
	ID   int64
	Role string
}

func (a *Actor) id() *int64 {
	if a == nil {
		return nil
	}
	return &a.ID
}

func (a *Actor) role() string {
	if a == nil {
		return ""
	}
	return a.Role
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique
// constraint violation containing the specified constraint name.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
