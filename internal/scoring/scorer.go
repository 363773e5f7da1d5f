package scoring

import (
	"time"

	"mindcare/internal/model"
)

// Answer values are the standard 0-3 frequency scale.
const (
	minAnswer = 0
	maxAnswer = 3
)

// Score validates and scores one instrument submission. The score is the sum
// of the answers; the severity label comes from the instrument's band table.
// No side effects; the caller owns persistence.
func Score(studentID, instrumentID string, answers []int, now time.Time) (*model.AssessmentResponse, error) {
	def, err := Instrument(instrumentID)
	if err != nil {
		return nil, err
	}

	if len(answers) != def.QuestionCount {
		return nil, validationErrorf("answers", "expected %d answers for %s, got %d", def.QuestionCount, def.ID, len(answers))
	}

	score := 0
	for i, a := range answers {
		if a < minAnswer || a > maxAnswer {
			return nil, validationErrorf("answers", "answer %d out of range: %d", i+1, a)
		}
		score += a
	}

	return &model.AssessmentResponse{
		StudentID:    studentID,
		InstrumentID: def.ID,
		Answers:      answers,
		Score:        score,
		Severity:     def.Classify(score),
		SubmittedAt:  now,
	}, nil
}

// BadgeThreshold is the score at which completing an instrument earns a
// badge: floor(maxScore * 0.8).
func BadgeThreshold(def InstrumentDefinition) int {
	return def.MaxScore * 8 / 10
}
