package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindcare/internal/cache"
	"mindcare/internal/config"
	"mindcare/internal/repository"
	"mindcare/internal/service"
	"mindcare/internal/transport/rest"
	"mindcare/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	assessmentRepo := repository.NewAssessmentRepo(db)
	academicRepo := repository.NewAcademicRepo(db)
	moodRepo := repository.NewMoodRepo(db)
	badgeRepo := repository.NewBadgeRepo(db)
	crisisRepo := repository.NewCrisisAlertRepo(db)
	sleepRepo := repository.NewSleepRepo(db)

	// Initialize caches
	riskCache := cache.NewRiskCache(rdb)
	trendCache := cache.NewTrendCache(rdb)
	pointsCache := cache.NewPointsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	gamificationSvc := service.NewGamificationService(badgeRepo, pointsCache)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, gamificationSvc)
	academicSvc := service.NewAcademicService(academicRepo)
	moodSvc := service.NewMoodService(moodRepo, trendCache, gamificationSvc)
	riskSvc := service.NewRiskService(assessmentRepo, moodRepo, riskCache)
	chatSvc := service.NewChatService(crisisRepo)
	sleepSvc := service.NewSleepService(sleepRepo)

	// Inject alert channel (wsHub implements service.AlertChannel)
	assessmentSvc.SetAlertChannel(wsHub)
	gamificationSvc.SetAlertChannel(wsHub)
	riskSvc.SetAlertChannel(wsHub)
	chatSvc.SetAlertChannel(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:         authSvc,
		AssessmentService:   assessmentSvc,
		AcademicService:     academicSvc,
		MoodService:         moodSvc,
		RiskService:         riskSvc,
		ChatService:         chatSvc,
		GamificationService: gamificationSvc,
		SleepService:        sleepSvc,
		WSHub:               wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
