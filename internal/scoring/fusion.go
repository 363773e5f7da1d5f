package scoring

import (
	"time"

	"mindcare/internal/model"
)

// Fusion weights: the latest instrument score dominates, the mood trend
// moderates.
const (
	assessmentWeight = 0.75
	moodWeight       = 0.25
)

// Composite level thresholds, shared by fusion and the academic estimator.
const (
	highThreshold   = 0.7
	mediumThreshold = 0.4
)

// LevelForScore classifies a 0-1 composite score.
func LevelForScore(score float64) model.RiskLevel {
	switch {
	case score >= highThreshold:
		return model.RiskHigh
	case score >= mediumThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// FuseRisk combines the most recent instrument score (0 when the student has
// none) with the windowed mood average into one overall risk. A mood average
// of 3 contributes no risk, 0 contributes full mood risk.
func FuseRisk(studentID string, latestScore, instrumentMax int, moodAverage float64, now time.Time) *model.RiskFusionResult {
	aNorm := 0.0
	if instrumentMax > 0 {
		aNorm = float64(latestScore) / float64(instrumentMax)
	}
	moodRisk := (3 - moodAverage) / 3

	score := assessmentWeight*aNorm + moodWeight*moodRisk

	return &model.RiskFusionResult{
		StudentID:       studentID,
		Score:           score,
		Level:           LevelForScore(score),
		InstrumentScore: latestScore,
		MoodAverage:     moodAverage,
		ComputedAt:      now,
	}
}
