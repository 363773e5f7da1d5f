package model

import "time"

// AssessmentResponse is one completed instrument submission. Responses are
// immutable once stored; the assessment log is append-only.
type AssessmentResponse struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	StudentID    string    `json:"studentId" bson:"studentId"`
	InstrumentID string    `json:"instrumentId" bson:"instrumentId"`
	Answers      []int     `json:"answers" bson:"answers"`
	Score        int       `json:"score" bson:"score"`
	Severity     string    `json:"severity" bson:"severity"`
	SubmittedAt  time.Time `json:"submittedAt" bson:"submittedAt"`
}
