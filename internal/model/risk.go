package model

import "time"

// RiskLevel classifies a 0-1 composite score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskFusionResult is the fused overall risk from the latest instrument score
// and the recent mood trend. Pure function of its inputs; no hidden state.
type RiskFusionResult struct {
	StudentID       string    `json:"studentId"`
	Score           float64   `json:"score"` // 0-1
	Level           RiskLevel `json:"level"`
	InstrumentScore int       `json:"instrumentScore"`
	MoodAverage     float64   `json:"moodAverage"`
	ComputedAt      time.Time `json:"computedAt"`
}
