package scoring

import (
	"time"

	"mindcare/internal/model"
)

// Factor weights for the academic composite score.
const (
	courseLoadWeight = 0.35
	stressWeight     = 0.25
	gpaWeight        = 0.15
	creditWeight     = 0.15
	hoursWeight      = 0.10

	// expectationWeight is intentionally zero: the grade-expectation factor
	// is computed and reported but does not yet contribute to the score.
	expectationWeight = 0.0
)

var expectationFactors = map[string]float64{
	"A": 0.2,
	"B": 0.1,
	"C": 0.05,
	"D": 0.0,
}

const defaultExpectationFactor = 0.1

// EstimateAcademicRisk normalizes the five academic factors into a composite
// 0-1 score and a Low/Medium/High level. Numeric inputs are clamped to their
// domains; GradeExpectation must be one of A, B, C, D or empty (unspecified).
func EstimateAcademicRisk(studentID string, p model.AcademicProfile, now time.Time) (*model.AcademicRiskResult, error) {
	expectation, ok := expectationFactors[p.GradeExpectation]
	if !ok {
		if p.GradeExpectation != "" {
			return nil, validationErrorf("gradeExpectation", "unknown grade %q", p.GradeExpectation)
		}
		expectation = defaultExpectationFactor
	}

	courseLoad := clamp(float64(p.CourseLoad), 0, 6)
	stress := clamp(float64(p.StressRating), 1, 5)
	gpa := clamp(p.GPA, 0, 4)
	credits := clamp(float64(p.Credits), 0, 24)
	studyHours := clamp(float64(p.StudyHours), 0, 80)

	// Heavier loads, higher subjective stress, and lower GPA raise risk.
	// Credits above the 12-credit baseline raise it further, and less than
	// two weekly study hours per credit signals under-preparation.
	factors := model.NormalizedFactors{
		CourseLoad:        courseLoad / 6,
		Stress:            stress / 5,
		GPA:               (4 - gpa) / 4,
		CreditFactor:      clamp((credits-12)/12, 0, 1),
		ExpectationFactor: expectation,
	}

	hoursPerCredit := 0.0
	if credits > 0 {
		hoursPerCredit = studyHours / credits
	}
	factors.HoursFactor = maxFloat(0, 1-hoursPerCredit/2)

	score := courseLoadWeight*factors.CourseLoad +
		stressWeight*factors.Stress +
		gpaWeight*factors.GPA +
		creditWeight*factors.CreditFactor +
		hoursWeight*factors.HoursFactor +
		expectationWeight*factors.ExpectationFactor

	return &model.AcademicRiskResult{
		StudentID:  studentID,
		Profile:    p,
		Factors:    factors,
		Score:      score,
		Level:      LevelForScore(score),
		AnalyzedAt: now,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
