package service

import (
	"context"
	"time"

	"mindcare/internal/model"
	"mindcare/internal/repository"
	"mindcare/internal/scoring"
)

// AcademicAnalysis is an estimate paired with its advisory list.
type AcademicAnalysis struct {
	Result          *model.AcademicRiskResult `json:"result"`
	Recommendations []string                  `json:"recommendations"`
}

// AcademicService runs academic stress analyses and keeps their history.
type AcademicService struct {
	history repository.AcademicRepo
}

// NewAcademicService creates a new academic service.
func NewAcademicService(history repository.AcademicRepo) *AcademicService {
	return &AcademicService{history: history}
}

// Analyze estimates academic stress, stores the result, and attaches the
// rule-based recommendations.
func (s *AcademicService) Analyze(ctx context.Context, studentID string, profile model.AcademicProfile) (*AcademicAnalysis, error) {
	result, err := scoring.EstimateAcademicRisk(studentID, profile, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.history.Append(ctx, result); err != nil {
		return nil, err
	}

	return &AcademicAnalysis{
		Result:          result,
		Recommendations: scoring.Recommend(result.Level, profile.GPA, profile.CourseLoad),
	}, nil
}

// History returns recent analyses for the effort-vs-load chart.
func (s *AcademicService) History(ctx context.Context, studentID string) ([]*model.AcademicRiskResult, error) {
	return s.history.Recent(ctx, studentID, 50)
}
