package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mindcare/internal/cache"
	"mindcare/internal/model"
	"mindcare/internal/repository"
)

// Point values for gamified actions.
const (
	PointsDailyCheckIn   = 10
	PointsAssessmentDone = 15
	PointsMoodStreak     = 10
)

// GamificationService manages badges and points.
type GamificationService struct {
	badges repository.BadgeRepo
	points cache.PointsCache
	alerts AlertChannel
}

// NewGamificationService creates a new gamification service.
func NewGamificationService(badges repository.BadgeRepo, points cache.PointsCache) *GamificationService {
	return &GamificationService{
		badges: badges,
		points: points,
		alerts: noopAlerts{},
	}
}

// SetAlertChannel injects the WebSocket hub.
func (s *GamificationService) SetAlertChannel(alerts AlertChannel) {
	s.alerts = alerts
}

// Award appends a badge, credits points, and notifies the student.
func (s *GamificationService) Award(ctx context.Context, studentID, name, description string, points int) (*model.Badge, error) {
	badge := &model.Badge{
		ID:          uuid.New().String(),
		StudentID:   studentID,
		Name:        name,
		Description: description,
		EarnedAt:    time.Now(),
	}
	if err := s.badges.Append(ctx, badge); err != nil {
		return nil, err
	}
	if points > 0 {
		if _, err := s.points.Add(ctx, studentID, points); err != nil {
			return nil, err
		}
	}

	s.alerts.NotifyStudent(studentID, MsgBadgeEarned, badge)
	return badge, nil
}

// CheckIn credits the daily check-in points.
func (s *GamificationService) CheckIn(ctx context.Context, studentID string) (int64, error) {
	return s.points.Add(ctx, studentID, PointsDailyCheckIn)
}

// Badges returns the student's recent badges.
func (s *GamificationService) Badges(ctx context.Context, studentID string) ([]*model.Badge, error) {
	return s.badges.Recent(ctx, studentID, 50)
}

// Points returns the student's point total.
func (s *GamificationService) Points(ctx context.Context, studentID string) (int64, error) {
	return s.points.Get(ctx, studentID)
}
