package handler

import (
	"encoding/json"
	"net/http"

	"mindcare/internal/scoring"
	"mindcare/internal/service"
	"mindcare/internal/transport/rest/middleware"
)

// SleepHandler handles sleep log endpoints
type SleepHandler struct {
	sleepSvc *service.SleepService
}

// NewSleepHandler creates a new sleep handler
func NewSleepHandler(sleepSvc *service.SleepService) *SleepHandler {
	return &SleepHandler{sleepSvc: sleepSvc}
}

// LogSleepRequest is the request body for logging sleep
type LogSleepRequest struct {
	Hours float64 `json:"hours"`
}

// Log handles POST /v1/sleep
func (h *SleepHandler) Log(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	var req LogSleepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.sleepSvc.Log(r.Context(), studentID, req.Hours)
	if err != nil {
		if scoring.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// History handles GET /v1/sleep
func (h *SleepHandler) History(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	entries, err := h.sleepSvc.History(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}
