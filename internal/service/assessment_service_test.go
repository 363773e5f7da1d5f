package service

import (
	"context"
	"testing"

	"mindcare/internal/scoring"
)

func newTestAssessmentService() (*AssessmentService, *fakeAssessmentRepo, *fakeBadgeRepo, *fakeAlerts) {
	responses := &fakeAssessmentRepo{}
	badges := &fakeBadgeRepo{}
	alerts := newFakeAlerts()
	gam := NewGamificationService(badges, newFakePointsCache())
	svc := NewAssessmentService(responses, gam)
	svc.SetAlertChannel(alerts)
	return svc, responses, badges, alerts
}

func TestSubmit_AppendsResponse(t *testing.T) {
	svc, responses, _, _ := newTestAssessmentService()

	answers := []int{1, 1, 1, 1, 1, 1, 1}
	resp, err := svc.Submit(context.Background(), "s1", scoring.InstrumentGAD7, answers)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Score != 7 || resp.Severity != "Mild" {
		t.Errorf("unexpected result: %+v", resp)
	}
	if len(responses.responses) != 1 {
		t.Fatalf("expected 1 appended response, got %d", len(responses.responses))
	}
}

func TestSubmit_HighScoreEarnsBadgeAndAlert(t *testing.T) {
	svc, _, badges, alerts := newTestAssessmentService()

	// GAD-7 max is 21; badge threshold is 16.
	answers := []int{3, 3, 3, 3, 3, 3, 0}
	resp, err := svc.Submit(context.Background(), "s1", scoring.InstrumentGAD7, answers)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Score != 18 {
		t.Fatalf("expected score 18, got %d", resp.Score)
	}
	if len(badges.badges) != 1 {
		t.Fatalf("expected 1 badge, got %d", len(badges.badges))
	}
	if badges.badges[0].Name != "GAD-7 completed" {
		t.Errorf("unexpected badge name %q", badges.badges[0].Name)
	}
	if len(alerts.counselor) != 1 || alerts.counselor[0].MsgType != MsgHighSeverity {
		t.Errorf("expected a high-severity counselor alert, got %v", alerts.counselor)
	}
}

func TestSubmit_BelowThresholdNoBadge(t *testing.T) {
	svc, _, badges, alerts := newTestAssessmentService()

	// Score 14 is below the GAD-7 badge threshold of 16 and below the
	// Severe band.
	answers := []int{3, 3, 3, 3, 2, 0, 0}
	if _, err := svc.Submit(context.Background(), "s1", scoring.InstrumentGAD7, answers); err != nil {
		t.Fatal(err)
	}
	if len(badges.badges) != 0 {
		t.Errorf("expected no badge, got %d", len(badges.badges))
	}
	if len(alerts.counselor) != 0 {
		t.Errorf("expected no counselor alert, got %v", alerts.counselor)
	}
}

func TestSubmit_ValidationErrorLeavesLogUntouched(t *testing.T) {
	svc, responses, _, _ := newTestAssessmentService()

	if _, err := svc.Submit(context.Background(), "s1", scoring.InstrumentPHQ9, []int{1, 2}); !scoring.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(responses.responses) != 0 {
		t.Errorf("invalid submission must not be persisted")
	}
}

func TestHistory_FiltersByInstrument(t *testing.T) {
	svc, _, _, _ := newTestAssessmentService()
	ctx := context.Background()

	phq := make([]int, 9)
	gad := make([]int, 7)
	if _, err := svc.Submit(ctx, "s1", scoring.InstrumentPHQ9, phq); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(ctx, "s1", scoring.InstrumentGAD7, gad); err != nil {
		t.Fatal(err)
	}

	all, err := svc.History(ctx, "s1", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 responses, got %d", len(all))
	}

	onlyPHQ, err := svc.History(ctx, "s1", scoring.InstrumentPHQ9)
	if err != nil {
		t.Fatal(err)
	}
	if len(onlyPHQ) != 1 || onlyPHQ[0].InstrumentID != scoring.InstrumentPHQ9 {
		t.Errorf("expected only the PHQ-9 response, got %v", onlyPHQ)
	}
}
