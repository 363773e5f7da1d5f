package service

import (
	"context"
	"fmt"
	"time"

	"mindcare/internal/model"
	"mindcare/internal/repository"
	"mindcare/internal/scoring"
)

// SleepService maintains the sleep log.
type SleepService struct {
	entries repository.SleepRepo
}

// NewSleepService creates a new sleep service.
func NewSleepService(entries repository.SleepRepo) *SleepService {
	return &SleepService{entries: entries}
}

// Log appends one night's sleep entry. Hours must be within [0, 24].
func (s *SleepService) Log(ctx context.Context, studentID string, hours float64) (*model.SleepEntry, error) {
	if hours < 0 || hours > 24 {
		return nil, &scoring.ValidationError{
			Field:  "hours",
			Reason: fmt.Sprintf("must be between 0 and 24, got %g", hours),
		}
	}

	entry := &model.SleepEntry{
		StudentID: studentID,
		Hours:     hours,
		LoggedAt:  time.Now(),
	}
	if err := s.entries.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// History returns recent sleep entries, most-recent-first.
func (s *SleepService) History(ctx context.Context, studentID string) ([]*model.SleepEntry, error) {
	return s.entries.Recent(ctx, studentID, 60)
}
