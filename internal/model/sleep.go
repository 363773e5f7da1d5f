package model

import "time"

// SleepEntry is one night's sleep log.
type SleepEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	StudentID string    `json:"studentId" bson:"studentId"`
	Hours     float64   `json:"hours" bson:"hours"`
	LoggedAt  time.Time `json:"loggedAt" bson:"loggedAt"`
}
