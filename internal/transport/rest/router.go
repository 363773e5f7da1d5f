package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"mindcare/internal/service"
	"mindcare/internal/transport/rest/handler"
	"mindcare/internal/transport/rest/middleware"
	"mindcare/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService         *service.AuthService
	AssessmentService   *service.AssessmentService
	AcademicService     *service.AcademicService
	MoodService         *service.MoodService
	RiskService         *service.RiskService
	ChatService         *service.ChatService
	GamificationService *service.GamificationService
	SleepService        *service.SleepService
	WSHub               *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	academicHandler := handler.NewAcademicHandler(c.AcademicService)
	moodHandler := handler.NewMoodHandler(c.MoodService)
	riskHandler := handler.NewRiskHandler(c.RiskService)
	chatHandler := handler.NewChatHandler(c.ChatService)
	gamificationHandler := handler.NewGamificationHandler(c.GamificationService)
	sleepHandler := handler.NewSleepHandler(c.SleepService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/students/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/instruments", assessmentHandler.Instruments).Methods("GET", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/counselor", wsHandler.CounselorWS).Methods("GET")
	v1.HandleFunc("/ws/student", wsHandler.StudentWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Student routes (require student auth)
	studentRoutes := v1.NewRoute().Subrouter()
	studentRoutes.Use(authMW.RequireStudent)

	studentRoutes.HandleFunc("/assessments/{instrumentId}", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/assessments/{instrumentId}/history", assessmentHandler.History).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/academic/analyze", academicHandler.Analyze).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/academic/history", academicHandler.History).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/moods", moodHandler.Log).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/moods", moodHandler.History).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/moods/trend", moodHandler.Trend).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/risk/compute", riskHandler.Compute).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/risk", riskHandler.Snapshot).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/chat/messages", chatHandler.Message).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/chat/sos", chatHandler.SOS).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/gamification/checkin", gamificationHandler.CheckIn).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/gamification/badges", gamificationHandler.Badges).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/gamification/points", gamificationHandler.Points).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/sleep", sleepHandler.Log).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/sleep", sleepHandler.History).Methods("GET", "OPTIONS")

	// Counselor routes (require counselor auth)
	counselorRoutes := v1.NewRoute().Subrouter()
	counselorRoutes.Use(authMW.RequireCounselor)

	counselorRoutes.HandleFunc("/crisis/alerts", chatHandler.Alerts).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
