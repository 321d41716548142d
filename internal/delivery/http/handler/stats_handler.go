package handler

import (
	"net/http"

	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.AdminStats(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get statistics")
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) AdminPharmacyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.AdminPharmacyStats(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get statistics")
		return
	}
	response.JSON(w, http.StatusOK, stats)
}
