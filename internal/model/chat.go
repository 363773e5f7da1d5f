package model

import "time"

// CrisisDetectionResult reports whether free text contained crisis language.
type CrisisDetectionResult struct {
	Matched         bool     `json:"matched"`
	MatchedKeywords []string `json:"matchedKeywords,omitempty"`
}

// ChatReply is the assistant's response to a student message. Crisis is true
// when normal reply generation was bypassed and counselors were alerted.
type ChatReply struct {
	Content   string    `json:"content"`
	Crisis    bool      `json:"crisis"`
	Topic     string    `json:"topic,omitempty"`
	RepliedAt time.Time `json:"repliedAt"`
}

// CrisisAlert is an SOS record appended when crisis language is detected or a
// student triggers the SOS flow directly.
type CrisisAlert struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	StudentID       string    `json:"studentId" bson:"studentId"`
	Source          string    `json:"source" bson:"source"` // "chat" or "sos"
	Excerpt         string    `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	MatchedKeywords []string  `json:"matchedKeywords,omitempty" bson:"matchedKeywords,omitempty"`
	RaisedAt        time.Time `json:"raisedAt" bson:"raisedAt"`
}
