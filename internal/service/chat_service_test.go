package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"mindcare/internal/model"
)

// failingCrisisRepo simulates an unavailable alert log.
type failingCrisisRepo struct{}

func (failingCrisisRepo) Append(context.Context, *model.CrisisAlert) error {
	return errors.New("connection refused")
}

func (failingCrisisRepo) Recent(context.Context, int64) ([]*model.CrisisAlert, error) {
	return nil, errors.New("connection refused")
}

func newTestChatService() (*ChatService, *fakeCrisisRepo, *fakeAlerts) {
	crisisLog := &fakeCrisisRepo{}
	alerts := newFakeAlerts()
	svc := NewChatService(crisisLog)
	svc.SetAlertChannel(alerts)
	return svc, crisisLog, alerts
}

func TestHandleMessage_CrisisShortCircuits(t *testing.T) {
	svc, crisisLog, alerts := newTestChatService()

	reply, err := svc.HandleMessage(context.Background(), "s1", "I want to die")
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Crisis {
		t.Fatal("expected crisis reply")
	}
	if reply.Topic != "" {
		t.Errorf("crisis path must skip topic classification, got %q", reply.Topic)
	}
	if len(crisisLog.alerts) != 1 {
		t.Fatalf("expected 1 logged alert, got %d", len(crisisLog.alerts))
	}
	alert := crisisLog.alerts[0]
	if alert.Source != "chat" {
		t.Errorf("expected chat source, got %q", alert.Source)
	}
	if len(alert.MatchedKeywords) == 0 || alert.MatchedKeywords[0] != "want to die" {
		t.Errorf("expected matched keywords recorded, got %v", alert.MatchedKeywords)
	}
	if len(alerts.counselor) != 1 || alerts.counselor[0].MsgType != MsgCrisisAlert {
		t.Errorf("expected counselor broadcast, got %v", alerts.counselor)
	}
}

func TestHandleMessage_CrisisBroadcastSurvivesLogFailure(t *testing.T) {
	alerts := newFakeAlerts()
	svc := NewChatService(failingCrisisRepo{})
	svc.SetAlertChannel(alerts)

	reply, err := svc.HandleMessage(context.Background(), "s1", "I want to die")
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Crisis {
		t.Fatal("expected crisis reply")
	}
	if len(alerts.counselor) != 1 || alerts.counselor[0].MsgType != MsgCrisisAlert {
		t.Errorf("counselors must be alerted even when the log append fails, got %v", alerts.counselor)
	}
}

func TestHandleMessage_ExcerptKeepsValidUTF8(t *testing.T) {
	svc, crisisLog, _ := newTestChatService()

	// 14 leading bytes plus 4-byte runes puts byte 140 mid-rune.
	text := "I want to die " + strings.Repeat("\U0001F622", 40)
	if _, err := svc.HandleMessage(context.Background(), "s1", text); err != nil {
		t.Fatal(err)
	}
	if len(crisisLog.alerts) != 1 {
		t.Fatalf("expected 1 logged alert, got %d", len(crisisLog.alerts))
	}
	got := crisisLog.alerts[0].Excerpt
	if len(got) > 140 {
		t.Errorf("excerpt exceeds 140 bytes: %d", len(got))
	}
	if !utf8.ValidString(got) {
		t.Errorf("excerpt is not valid UTF-8: %q", got)
	}
}

func TestHandleMessage_NormalReply(t *testing.T) {
	svc, crisisLog, alerts := newTestChatService()

	reply, err := svc.HandleMessage(context.Background(), "s1", "I feel okay today")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Crisis {
		t.Error("expected non-crisis reply")
	}
	if reply.Topic != "general" {
		t.Errorf("expected general topic, got %q", reply.Topic)
	}
	if len(crisisLog.alerts) != 0 || len(alerts.counselor) != 0 {
		t.Error("normal messages must not raise alerts")
	}
}

func TestHandleMessage_TopicClassification(t *testing.T) {
	svc, _, _ := newTestChatService()
	ctx := context.Background()

	cases := []struct {
		text string
		want string
	}{
		{"my exam next week terrifies me", "academic"},
		{"I cannot sleep at night", "sleep"},
		{"I had a fight with my friend", "social"},
		{"everything feels heavy", "general"},
	}
	for _, c := range cases {
		reply, err := svc.HandleMessage(ctx, "s1", c.text)
		if err != nil {
			t.Fatal(err)
		}
		if reply.Topic != c.want {
			t.Errorf("%q: expected topic %s, got %s", c.text, c.want, reply.Topic)
		}
	}
}

func TestHandleMessage_Deterministic(t *testing.T) {
	svc, _, _ := newTestChatService()
	ctx := context.Background()

	a, err := svc.HandleMessage(ctx, "s1", "study stress again")
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.HandleMessage(ctx, "s1", "study stress again")
	if err != nil {
		t.Fatal(err)
	}
	if a.Content != b.Content {
		t.Error("identical input must produce identical replies")
	}
}

func TestRaiseSOS(t *testing.T) {
	svc, crisisLog, alerts := newTestChatService()

	alert, err := svc.RaiseSOS(context.Background(), "s1", "triggered from SOS page")
	if err != nil {
		t.Fatal(err)
	}
	if alert.Source != "sos" {
		t.Errorf("expected sos source, got %q", alert.Source)
	}
	if len(crisisLog.alerts) != 1 {
		t.Errorf("expected alert persisted")
	}
	if len(alerts.counselor) != 1 || alerts.counselor[0].MsgType != MsgCrisisAlert {
		t.Errorf("expected counselor broadcast, got %v", alerts.counselor)
	}
}
