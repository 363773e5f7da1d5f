package service

// AlertChannel is the outbound notification contract, implemented by the
// WebSocket hub (kept as an interface to avoid an import cycle). Crisis
// alerts fan out to every connected counselor; student notifications target
// one session.
type AlertChannel interface {
	BroadcastToCounselors(msgType string, payload interface{})
	NotifyStudent(studentID string, msgType string, payload interface{})
}

// Message types pushed over the hub.
const (
	MsgCrisisAlert  = "crisis_alert"
	MsgRiskUpdate   = "risk_update"
	MsgHighSeverity = "high_severity_assessment"
	MsgBadgeEarned  = "badge_earned"
)

// noopAlerts is used until a hub is injected.
type noopAlerts struct{}

func (noopAlerts) BroadcastToCounselors(string, interface{}) {}
func (noopAlerts) NotifyStudent(string, string, interface{}) {}
