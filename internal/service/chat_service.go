package service

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"mindcare/internal/model"
	"mindcare/internal/repository"
	"mindcare/internal/scoring"
)

const crisisReply = "I'm really concerned about what you've shared. You don't have to face this alone — a counselor has been notified and crisis resources are available right now. If you are in immediate danger, please call your local emergency number."

// Supportive reply templates keyed by detected topic.
var topicReplies = map[string]string{
	"academic": "I hear that you're going through a challenging time with academic stress. It's completely normal to feel this way, and seeking support shows real strength. Can you tell me more about what specifically is making you feel this way?",
	"sleep":    "I hear that you're going through a challenging time with sleep difficulties. Rest has a huge effect on how we cope. Would you like to look at your recent sleep log together and spot a pattern?",
	"social":   "I hear that you're going through a challenging time with social concerns. Feeling disconnected is hard, and your feelings are completely valid. What would you say is the most pressing concern right now?",
	"general":  "Thank you for sharing that with me. What you're experiencing sounds really difficult, and your feelings are completely valid. Let's break this down into smaller, more manageable pieces — what is the most pressing concern right now?",
}

// ChatService produces assistant replies. Crisis detection runs before any
// reply generation; a match short-circuits the normal path and raises an
// alert instead.
type ChatService struct {
	crisisLog repository.CrisisAlertRepo
	alerts    AlertChannel
}

// NewChatService creates a new chat service.
func NewChatService(crisisLog repository.CrisisAlertRepo) *ChatService {
	return &ChatService{
		crisisLog: crisisLog,
		alerts:    noopAlerts{},
	}
}

// SetAlertChannel injects the WebSocket hub.
func (s *ChatService) SetAlertChannel(alerts AlertChannel) {
	s.alerts = alerts
}

// HandleMessage answers one student message. Replies are a deterministic
// function of the message text.
func (s *ChatService) HandleMessage(ctx context.Context, studentID, text string) (*model.ChatReply, error) {
	detection := scoring.DetectCrisis(text)
	if detection.Matched {
		if err := s.raiseAlert(ctx, studentID, text, detection); err != nil {
			// The alert log failing must not suppress the crisis reply.
			log.Printf("crisis alert append failed for %s: %v", studentID, err)
		}
		return &model.ChatReply{
			Content:   crisisReply,
			Crisis:    true,
			RepliedAt: time.Now(),
		}, nil
	}

	topic := classifyTopic(text)
	return &model.ChatReply{
		Content:   topicReplies[topic],
		Topic:     topic,
		RepliedAt: time.Now(),
	}, nil
}

// RaiseSOS records a student-triggered SOS and alerts counselors.
func (s *ChatService) RaiseSOS(ctx context.Context, studentID, details string) (*model.CrisisAlert, error) {
	alert := &model.CrisisAlert{
		ID:        uuid.New().String(),
		StudentID: studentID,
		Source:    "sos",
		Excerpt:   details,
		RaisedAt:  time.Now(),
	}
	if err := s.crisisLog.Append(ctx, alert); err != nil {
		return nil, err
	}
	s.alerts.BroadcastToCounselors(MsgCrisisAlert, alert)
	return alert, nil
}

// Alerts returns recent crisis alerts for the counselor dashboard.
func (s *ChatService) Alerts(ctx context.Context, limit int64) ([]*model.CrisisAlert, error) {
	return s.crisisLog.Recent(ctx, limit)
}

func (s *ChatService) raiseAlert(ctx context.Context, studentID, text string, detection model.CrisisDetectionResult) error {
	alert := &model.CrisisAlert{
		ID:              uuid.New().String(),
		StudentID:       studentID,
		Source:          "chat",
		Excerpt:         excerpt(text),
		MatchedKeywords: detection.MatchedKeywords,
		RaisedAt:        time.Now(),
	}
	// Counselors must hear about a detected crisis even when the alert log
	// is unavailable, so broadcast before persisting.
	s.alerts.BroadcastToCounselors(MsgCrisisAlert, alert)
	return s.crisisLog.Append(ctx, alert)
}

func classifyTopic(text string) string {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "exam") || strings.Contains(lowered, "study"):
		return "academic"
	case strings.Contains(lowered, "sleep"):
		return "sleep"
	case strings.Contains(lowered, "friend") || strings.Contains(lowered, "social"):
		return "social"
	default:
		return "general"
	}
}

// excerpt truncates to at most 140 bytes without splitting a rune.
func excerpt(text string) string {
	if len(text) <= 140 {
		return text
	}
	cut := text[:140]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
