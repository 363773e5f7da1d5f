package handler

import (
	"net/http"

	"mindcare/internal/service"
	"mindcare/internal/transport/rest/middleware"
)

// GamificationHandler handles badge and points endpoints
type GamificationHandler struct {
	gamificationSvc *service.GamificationService
}

// NewGamificationHandler creates a new gamification handler
func NewGamificationHandler(gamificationSvc *service.GamificationService) *GamificationHandler {
	return &GamificationHandler{gamificationSvc: gamificationSvc}
}

// CheckIn handles POST /v1/gamification/checkin
func (h *GamificationHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	total, err := h.gamificationSvc.CheckIn(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"points": total})
}

// Badges handles GET /v1/gamification/badges
func (h *GamificationHandler) Badges(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	badges, err := h.gamificationSvc.Badges(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"badges": badges})
}

// Points handles GET /v1/gamification/points
func (h *GamificationHandler) Points(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	total, err := h.gamificationSvc.Points(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"points": total})
}
