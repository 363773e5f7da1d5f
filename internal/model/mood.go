package model

import "time"

// MoodEntry is one mood journal record. MoodScore is a pointer so a record
// that was saved without a score (older clients) is distinguishable from a
// genuine 0; aggregation substitutes the neutral default for nil.
type MoodEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	StudentID string    `json:"studentId" bson:"studentId"`
	Mood      string    `json:"mood" bson:"mood"` // happy, neutral, sad, anxious
	MoodScore *int      `json:"moodScore,omitempty" bson:"moodScore,omitempty"`
	Note      string    `json:"note,omitempty" bson:"note,omitempty"`
	LoggedAt  time.Time `json:"loggedAt" bson:"loggedAt"`
}

// MoodTrendSummary condenses recent mood history for dashboards and risk
// fusion.
type MoodTrendSummary struct {
	WindowSize int     `json:"windowSize"`
	Average    float64 `json:"average"`
	StreakDays int     `json:"streakDays"`
}
