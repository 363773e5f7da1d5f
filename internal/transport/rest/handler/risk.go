package handler

import (
	"net/http"

	"mindcare/internal/service"
	"mindcare/internal/transport/rest/middleware"
)

// RiskHandler handles composite risk endpoints
type RiskHandler struct {
	riskSvc *service.RiskService
}

// NewRiskHandler creates a new risk handler
func NewRiskHandler(riskSvc *service.RiskService) *RiskHandler {
	return &RiskHandler{riskSvc: riskSvc}
}

// Compute handles POST /v1/risk/compute
func (h *RiskHandler) Compute(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	result, err := h.riskSvc.Compute(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Snapshot handles GET /v1/risk
func (h *RiskHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	result, err := h.riskSvc.Snapshot(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
