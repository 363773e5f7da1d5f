package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"mindcare/internal/model"
	"mindcare/internal/repository"
	"mindcare/internal/scoring"
)

// AssessmentService scores instrument submissions and maintains the
// assessment log.
type AssessmentService struct {
	responses    repository.AssessmentRepo
	gamification *GamificationService
	alerts       AlertChannel
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(responses repository.AssessmentRepo, gamification *GamificationService) *AssessmentService {
	return &AssessmentService{
		responses:    responses,
		gamification: gamification,
		alerts:       noopAlerts{},
	}
}

// SetAlertChannel injects the WebSocket hub.
func (s *AssessmentService) SetAlertChannel(alerts AlertChannel) {
	s.alerts = alerts
}

// Submit validates and scores one submission, appends it to the log, and
// applies the badge rule: score >= floor(maxScore * 0.8) earns a completion
// badge. Severe submissions are pushed to counselors.
func (s *AssessmentService) Submit(ctx context.Context, studentID, instrumentID string, answers []int) (*model.AssessmentResponse, error) {
	resp, err := scoring.Score(studentID, instrumentID, answers, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.responses.Append(ctx, resp); err != nil {
		return nil, err
	}

	def, _ := scoring.Instrument(instrumentID)
	if resp.Score >= scoring.BadgeThreshold(def) {
		name := fmt.Sprintf("%s completed", def.ID)
		desc := fmt.Sprintf("Completed %s", def.ID)
		if _, err := s.gamification.Award(ctx, studentID, name, desc, PointsAssessmentDone); err != nil {
			log.Printf("badge award failed for %s: %v", studentID, err)
		}
	}
	if resp.Severity == def.Bands[0].Label {
		s.alerts.BroadcastToCounselors(MsgHighSeverity, resp)
	}

	return resp, nil
}

// History returns recent responses, optionally filtered by instrument.
func (s *AssessmentService) History(ctx context.Context, studentID, instrumentID string) ([]*model.AssessmentResponse, error) {
	return s.responses.Recent(ctx, studentID, instrumentID, 200)
}

// Catalog lists the supported instruments.
func (s *AssessmentService) Catalog() []scoring.InstrumentDefinition {
	return scoring.Instruments()
}
