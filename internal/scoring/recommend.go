package scoring

import "mindcare/internal/model"

// Base tips per risk level, in presentation order.
var baseTips = map[model.RiskLevel][]string{
	model.RiskHigh: {
		"Talk to an academic advisor about course load adjustments.",
		"Schedule focused blocks with breaks (Pomodoro).",
		"Use campus counseling resources if stress persists.",
	},
	model.RiskMedium: {
		"Plan weekly study goals and track progress.",
		"Join a study group for challenging courses.",
	},
	model.RiskLow: {
		"Maintain current habits and check-in weekly.",
	},
}

// Recommend returns the advisory list for a risk level and raw profile
// factors. Output order is fixed: level tips first, then the GPA tip, then
// the course-load tip. Deterministic; no randomization.
func Recommend(level model.RiskLevel, gpa float64, courseLoad int) []string {
	tips := append([]string(nil), baseTips[level]...)

	if gpa < 2.5 {
		tips = append(tips, "Visit tutoring center for GPA support.")
	}
	if courseLoad >= 5 {
		tips = append(tips, "Consider dropping a non-essential course early.")
	}
	return tips
}
