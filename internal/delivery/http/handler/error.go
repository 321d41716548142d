package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pharmacare-api/internal/delivery/http/middleware"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"

	"github.com/gorilla/mux"
)

// usecaseErrorStatus maps a usecase error to its HTTP status and
// message. Bulk item failures keep the item position in the message
// and inherit the status of the underlying cause.
func usecaseErrorStatus(err error, fallback string) (int, string) {
	var bulkErr *usecase.BulkItemError
	if errors.As(err, &bulkErr) {
		status, _ := usecaseErrorStatus(bulkErr.Err, fallback)
		return status, bulkErr.Error()
	}

	var notFound *usecase.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, notFound.Error()
	}

	var required *usecase.RequiredError
	if errors.As(err, &required) {
		return http.StatusBadRequest, required.Error()
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, usecase.ErrAccountBlocked):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrTokenRevoked):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, usecase.ErrEmailAlreadyExists), errors.Is(err, usecase.ErrRegistrationNumberExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, usecase.ErrWrongPassword):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, fallback
}

func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	status, message := usecaseErrorStatus(err, fallback)
	response.Error(w, status, message)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// actorFromContext identifies the authenticated caller for the audit
// trail. Nil when the route is not authenticated.
func actorFromContext(r *http.Request) *usecase.Actor {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		return nil
	}
	actor := &usecase.Actor{ID: identity.ID}
	if len(identity.Roles) > 0 {
		actor.Role = identity.Roles[0]
	}
	return actor
}
