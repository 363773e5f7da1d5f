package model

import "time"

// Badge is a gamification award. Badges are append-only; the caller decides
// when a scoring or streak threshold earns one.
type Badge struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	StudentID   string    `json:"studentId" bson:"studentId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	EarnedAt    time.Time `json:"earnedAt" bson:"earnedAt"`
}
