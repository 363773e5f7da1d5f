package model

import "time"

// AcademicProfile is a student's self-reported academic situation.
type AcademicProfile struct {
	CourseLoad       int     `json:"courseLoad" bson:"courseLoad"`             // major courses, 0-6
	StressRating     int     `json:"stressRating" bson:"stressRating"`         // self-rated, 1-5
	GPA              float64 `json:"gpa" bson:"gpa"`                           // 0.0-4.0
	Credits          int     `json:"credits" bson:"credits"`                   // 0-24
	StudyHours       int     `json:"studyHours" bson:"studyHours"`             // weekly, 0-80
	GradeExpectation string  `json:"gradeExpectation" bson:"gradeExpectation"` // A, B, C, D
}

// NormalizedFactors are the per-factor values after clamping and rescaling.
// ExpectationFactor is computed for observability but carries zero weight in
// the composite score.
type NormalizedFactors struct {
	CourseLoad        float64 `json:"courseLoad" bson:"courseLoad"`
	Stress            float64 `json:"stress" bson:"stress"`
	GPA               float64 `json:"gpa" bson:"gpa"`
	CreditFactor      float64 `json:"creditFactor" bson:"creditFactor"`
	HoursFactor       float64 `json:"hoursFactor" bson:"hoursFactor"`
	ExpectationFactor float64 `json:"expectationFactor" bson:"expectationFactor"`
}

// AcademicRiskResult is a single academic stress analysis. Recomputed on
// demand; the stored history only feeds trend charts.
type AcademicRiskResult struct {
	ID         string            `json:"id" bson:"_id,omitempty"`
	StudentID  string            `json:"studentId" bson:"studentId"`
	Profile    AcademicProfile   `json:"profile" bson:"profile"`
	Factors    NormalizedFactors `json:"factors" bson:"factors"`
	Score      float64           `json:"score" bson:"score"` // 0-1
	Level      RiskLevel         `json:"level" bson:"level"`
	AnalyzedAt time.Time         `json:"analyzedAt" bson:"analyzedAt"`
}
