package handler

import (
	"net/http"
	"strconv"

	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
)

type AuditLogHandler struct {
	auditUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditUsecase: auditUsecase}
}

func (h *AuditLogHandler) Index(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	logs, err := h.auditUsecase.List(r.Context(), limit, offset)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get audit logs")
		return
	}
	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
