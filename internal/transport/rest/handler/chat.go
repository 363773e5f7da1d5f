package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mindcare/internal/service"
	"mindcare/internal/transport/rest/middleware"
)

// ChatHandler handles support chat and crisis endpoints
type ChatHandler struct {
	chatSvc *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// MessageRequest is the request body for a chat message
type MessageRequest struct {
	Text string `json:"text"`
}

// Message handles POST /v1/chat/messages
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	reply, err := h.chatSvc.HandleMessage(r.Context(), studentID, req.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

// SOSRequest is the request body for a manual SOS
type SOSRequest struct {
	Details string `json:"details"`
}

// SOS handles POST /v1/chat/sos
func (h *ChatHandler) SOS(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetStudentID(r.Context())

	var req SOSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	alert, err := h.chatSvc.RaiseSOS(r.Context(), studentID, req.Details)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, alert)
}

// Alerts handles GET /v1/crisis/alerts (counselor only)
func (h *ChatHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	limit := int64(50)
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	alerts, err := h.chatSvc.Alerts(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"alerts": alerts})
}
