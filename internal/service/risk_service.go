package service

import (
	"context"
	"log"
	"time"

	"mindcare/internal/cache"
	"mindcare/internal/model"
	"mindcare/internal/repository"
	"mindcare/internal/scoring"
)

// RiskService fuses the latest PHQ-9 score with the recent mood trend into
// one overall risk snapshot.
type RiskService struct {
	assessments repository.AssessmentRepo
	moods       repository.MoodRepo
	snapshots   cache.RiskCache
	alerts      AlertChannel
}

// NewRiskService creates a new risk service.
func NewRiskService(assessments repository.AssessmentRepo, moods repository.MoodRepo, snapshots cache.RiskCache) *RiskService {
	return &RiskService{
		assessments: assessments,
		moods:       moods,
		snapshots:   snapshots,
		alerts:      noopAlerts{},
	}
}

// SetAlertChannel injects the WebSocket hub.
func (s *RiskService) SetAlertChannel(alerts AlertChannel) {
	s.alerts = alerts
}

// Compute recomputes the fused risk from the logs, caches the snapshot, and
// pushes High results to counselors. A student with no PHQ-9 response
// contributes zero instrument risk.
func (s *RiskService) Compute(ctx context.Context, studentID string) (*model.RiskFusionResult, error) {
	latest, err := s.assessments.Latest(ctx, studentID, scoring.InstrumentPHQ9)
	if err != nil {
		return nil, err
	}
	latestScore := 0
	if latest != nil {
		latestScore = latest.Score
	}

	def, err := scoring.Instrument(scoring.InstrumentPHQ9)
	if err != nil {
		return nil, err
	}

	entries, err := s.moods.Recent(ctx, studentID, scoring.DefaultTrendWindow)
	if err != nil {
		return nil, err
	}
	moodAverage := scoring.AverageRecent(deref(entries), scoring.DefaultTrendWindow)

	result := scoring.FuseRisk(studentID, latestScore, def.MaxScore, moodAverage, time.Now())

	if err := s.snapshots.Set(ctx, result); err != nil {
		log.Printf("risk snapshot cache write failed for %s: %v", studentID, err)
	}
	if result.Level == model.RiskHigh {
		s.alerts.BroadcastToCounselors(MsgRiskUpdate, result)
	}

	return result, nil
}

// Snapshot returns the cached risk result, recomputing when the cache is
// cold.
func (s *RiskService) Snapshot(ctx context.Context, studentID string) (*model.RiskFusionResult, error) {
	if cached, err := s.snapshots.Get(ctx, studentID); err == nil && cached != nil {
		return cached, nil
	}
	return s.Compute(ctx, studentID)
}
