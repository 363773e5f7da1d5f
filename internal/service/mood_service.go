package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"mindcare/internal/cache"
	"mindcare/internal/model"
	"mindcare/internal/repository"
	"mindcare/internal/scoring"
)

const streakBadgeName = "7-day mood streak"

// MoodService maintains the mood journal and its derived trend.
type MoodService struct {
	entries      repository.MoodRepo
	trends       cache.TrendCache
	gamification *GamificationService
}

// NewMoodService creates a new mood service.
func NewMoodService(entries repository.MoodRepo, trends cache.TrendCache, gamification *GamificationService) *MoodService {
	return &MoodService{
		entries:      entries,
		trends:       trends,
		gamification: gamification,
	}
}

// Log appends a mood entry, invalidates the cached trend, and applies the
// streak badge rule: seven consecutive days of entries earns a badge, once
// per streak.
func (s *MoodService) Log(ctx context.Context, studentID, mood string, moodScore *int, note string) (*model.MoodEntry, error) {
	if moodScore != nil && (*moodScore < 0 || *moodScore > 3) {
		return nil, &scoring.ValidationError{
			Field:  "moodScore",
			Reason: fmt.Sprintf("must be between 0 and 3, got %d", *moodScore),
		}
	}

	entry := &model.MoodEntry{
		StudentID: studentID,
		Mood:      mood,
		MoodScore: moodScore,
		Note:      note,
		LoggedAt:  time.Now(),
	}
	if err := s.entries.Append(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.trends.Invalidate(ctx, studentID); err != nil {
		log.Printf("trend invalidation failed for %s: %v", studentID, err)
	}

	streak, err := s.streak(ctx, studentID)
	if err != nil {
		log.Printf("streak check failed for %s: %v", studentID, err)
		return entry, nil
	}
	if streak >= scoring.DefaultStreakWindow {
		if err := s.maybeAwardStreakBadge(ctx, studentID); err != nil {
			log.Printf("streak badge failed for %s: %v", studentID, err)
		}
	}

	return entry, nil
}

// maybeAwardStreakBadge awards the streak badge unless one was already
// earned during the current run of consecutive days.
func (s *MoodService) maybeAwardStreakBadge(ctx context.Context, studentID string) error {
	entries, err := s.entries.Recent(ctx, studentID, 200)
	if err != nil {
		return err
	}
	run := scoring.CurrentStreak(deref(entries), time.Now(), len(entries))
	start := dayStart(time.Now().UTC().AddDate(0, 0, -(run - 1)))

	badges, err := s.gamification.Badges(ctx, studentID)
	if err != nil {
		return err
	}
	for _, b := range badges {
		if b.Name == streakBadgeName && !b.EarnedAt.Before(start) {
			return nil
		}
	}

	_, err = s.gamification.Award(ctx, studentID,
		streakBadgeName, "Logged moods 7 days straight", PointsMoodStreak)
	return err
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// History returns recent mood entries, most-recent-first.
func (s *MoodService) History(ctx context.Context, studentID string, limit int64) ([]*model.MoodEntry, error) {
	return s.entries.Recent(ctx, studentID, limit)
}

// Trend returns the mood trend summary, serving from cache when possible.
func (s *MoodService) Trend(ctx context.Context, studentID string) (*model.MoodTrendSummary, error) {
	if cached, err := s.trends.Get(ctx, studentID); err == nil && cached != nil {
		return cached, nil
	}

	entries, err := s.entries.Recent(ctx, studentID, 200)
	if err != nil {
		return nil, err
	}

	summary := scoring.TrendSummary(deref(entries), time.Now())
	if err := s.trends.Set(ctx, studentID, &summary); err != nil {
		log.Printf("trend cache write failed for %s: %v", studentID, err)
	}
	return &summary, nil
}

func (s *MoodService) streak(ctx context.Context, studentID string) (int, error) {
	entries, err := s.entries.Recent(ctx, studentID, 200)
	if err != nil {
		return 0, err
	}
	return scoring.CurrentStreak(deref(entries), time.Now(), scoring.DefaultStreakWindow), nil
}

func deref(entries []*model.MoodEntry) []model.MoodEntry {
	out := make([]model.MoodEntry, len(entries))
	for i, e := range entries {
		out[i] = *e
	}
	return out
}
