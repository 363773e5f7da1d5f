package service

import (
	"context"
	"math"
	"testing"
	"time"

	"mindcare/internal/model"
	"mindcare/internal/scoring"
)

func newTestRiskService() (*RiskService, *fakeAssessmentRepo, *fakeMoodRepo, *fakeRiskCache, *fakeAlerts) {
	assessments := &fakeAssessmentRepo{}
	moods := &fakeMoodRepo{}
	snapshots := newFakeRiskCache()
	alerts := newFakeAlerts()
	svc := NewRiskService(assessments, moods, snapshots)
	svc.SetAlertChannel(alerts)
	return svc, assessments, moods, snapshots, alerts
}

func TestCompute_NoDataIsMoodOnlyNeutral(t *testing.T) {
	svc, _, _, _, _ := newTestRiskService()

	result, err := svc.Compute(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	// No PHQ-9 and an empty mood log: 0.75*0 + 0.25*((3-2)/3).
	want := 0.25 * (1.0 / 3.0)
	if math.Abs(result.Score-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, result.Score)
	}
	if result.Level != model.RiskLow {
		t.Errorf("expected Low, got %s", result.Level)
	}
}

func TestCompute_UsesLatestPHQ9(t *testing.T) {
	svc, assessments, moods, _, alerts := newTestRiskService()
	ctx := context.Background()

	assessments.Append(ctx, &model.AssessmentResponse{
		StudentID: "s1", InstrumentID: scoring.InstrumentPHQ9, Score: 27,
		SubmittedAt: time.Now(),
	})
	moods.Append(ctx, &model.MoodEntry{StudentID: "s1", MoodScore: intPtr(0), LoggedAt: time.Now()})

	result, err := svc.Compute(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(result.Score-1.0) > 1e-9 {
		t.Errorf("expected score 1.0, got %f", result.Score)
	}
	if result.Level != model.RiskHigh {
		t.Errorf("expected High, got %s", result.Level)
	}
	if len(alerts.counselor) != 1 || alerts.counselor[0].MsgType != MsgRiskUpdate {
		t.Errorf("expected risk_update broadcast for High, got %v", alerts.counselor)
	}
}

func TestCompute_IgnoresOtherInstruments(t *testing.T) {
	svc, assessments, _, _, _ := newTestRiskService()
	ctx := context.Background()

	assessments.Append(ctx, &model.AssessmentResponse{
		StudentID: "s1", InstrumentID: scoring.InstrumentGAD7, Score: 21,
		SubmittedAt: time.Now(),
	})

	result, err := svc.Compute(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if result.InstrumentScore != 0 {
		t.Errorf("GAD-7 must not feed fusion, got instrument score %d", result.InstrumentScore)
	}
}

func TestCompute_CachesSnapshot(t *testing.T) {
	svc, _, _, snapshots, _ := newTestRiskService()
	ctx := context.Background()

	if _, err := svc.Compute(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	if cached, _ := snapshots.Get(ctx, "s1"); cached == nil {
		t.Error("expected snapshot cached after compute")
	}
}

func TestSnapshot_ServesFromCache(t *testing.T) {
	svc, _, _, snapshots, _ := newTestRiskService()
	ctx := context.Background()

	want := &model.RiskFusionResult{StudentID: "s1", Score: 0.5, Level: model.RiskMedium}
	snapshots.Set(ctx, want)

	got, err := svc.Snapshot(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Score != 0.5 || got.Level != model.RiskMedium {
		t.Errorf("expected cached snapshot, got %+v", got)
	}
}

func TestSnapshot_ComputesOnColdCache(t *testing.T) {
	svc, _, _, _, _ := newTestRiskService()

	got, err := svc.Snapshot(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected computed result on cold cache")
	}
}

func TestCompute_NoAlertBelowHigh(t *testing.T) {
	svc, _, moods, _, alerts := newTestRiskService()
	ctx := context.Background()

	moods.Append(ctx, &model.MoodEntry{StudentID: "s1", MoodScore: intPtr(3), LoggedAt: time.Now()})
	if _, err := svc.Compute(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	if len(alerts.counselor) != 0 {
		t.Errorf("expected no broadcast for Low risk, got %v", alerts.counselor)
	}
}
