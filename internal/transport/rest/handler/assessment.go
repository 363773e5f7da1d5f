package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"mindcare/internal/scoring"
	"mindcare/internal/service"
	"mindcare/internal/transport/rest/middleware"
)

// AssessmentHandler handles instrument and assessment endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Instruments handles GET /v1/instruments
func (h *AssessmentHandler) Instruments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"instruments": h.assessmentSvc.Catalog(),
	})
}

// SubmitRequest is the request body for submitting an assessment
type SubmitRequest struct {
	Answers []int `json:"answers"`
}

// Submit handles POST /v1/assessments/{instrumentId}
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())
	instrumentID := mux.Vars(r)["instrumentId"]

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.assessmentSvc.Submit(r.Context(), studentID, instrumentID, req.Answers)
	if err != nil {
		if errors.Is(err, scoring.ErrInstrumentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if scoring.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// History handles GET /v1/assessments/{instrumentId}/history
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())
	instrumentID := mux.Vars(r)["instrumentId"]

	responses, err := h.assessmentSvc.History(r.Context(), studentID, instrumentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
}
