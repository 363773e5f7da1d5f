package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mindcare/internal/scoring"
	"mindcare/internal/service"
	"mindcare/internal/transport/rest/middleware"
)

// MoodHandler handles mood journal endpoints
type MoodHandler struct {
	moodSvc *service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodSvc *service.MoodService) *MoodHandler {
	return &MoodHandler{moodSvc: moodSvc}
}

// LogMoodRequest is the request body for logging a mood entry
type LogMoodRequest struct {
	Mood      string `json:"mood"`
	MoodScore *int   `json:"moodScore"`
	Note      string `json:"note"`
}

// Log handles POST /v1/moods
func (h *MoodHandler) Log(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	var req LogMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.moodSvc.Log(r.Context(), studentID, req.Mood, req.MoodScore, req.Note)
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

// History handles GET /v1/moods
func (h *MoodHandler) History(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	limit := int64(scoring.DefaultTrendWindow)
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.moodSvc.History(r.Context(), studentID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// Trend handles GET /v1/moods/trend
func (h *MoodHandler) Trend(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	summary, err := h.moodSvc.Trend(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
