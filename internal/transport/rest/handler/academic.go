package handler

import (
	"encoding/json"
	"net/http"

	"mindcare/internal/model"
	"mindcare/internal/scoring"
	"mindcare/internal/service"
	"mindcare/internal/transport/rest/middleware"
)

// AcademicHandler handles academic stress endpoints
type AcademicHandler struct {
	academicSvc *service.AcademicService
}

// NewAcademicHandler creates a new academic handler
func NewAcademicHandler(academicSvc *service.AcademicService) *AcademicHandler {
	return &AcademicHandler{academicSvc: academicSvc}
}

// Analyze handles POST /v1/academic/analyze
func (h *AcademicHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	var profile model.AcademicProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := h.academicSvc.Analyze(r.Context(), studentID, profile)
	if err != nil {
		if scoring.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// History handles GET /v1/academic/history
func (h *AcademicHandler) History(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	results, err := h.academicSvc.History(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
