package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message.
type MessageType string

// Counselor feed message types.
const (
	MsgCrisisAlert  MessageType = "crisis_alert"
	MsgRiskUpdate   MessageType = "risk_update"
	MsgHighSeverity MessageType = "high_severity_assessment"
)

// Student feed message types.
const (
	MsgBadgeEarned MessageType = "badge_earned"
	MsgError       MessageType = "error"
)

// Message is the WebSocket envelope format.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages counselor and student WebSocket connections. Counselors share
// one global alert feed; students each get a private notification stream.
type Hub struct {
	counselorConns map[string]*Connection // counselorID -> conn
	studentConns   map[string]*Connection // studentID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *outboundMessage
}

// Connection represents one WebSocket connection.
type Connection struct {
	CounselorID string // empty for student connections
	StudentID   string // empty for counselor connections
	Send        chan []byte
	Hub         *Hub
}

type outboundMessage struct {
	toStudent string // empty means all counselors
	message   *Message
}

// NewHub creates a new WebSocket hub and starts its event loop.
func NewHub() *Hub {
	h := &Hub{
		counselorConns: make(map[string]*Connection),
		studentConns:   make(map[string]*Connection),
		register:       make(chan *Connection),
		unregister:     make(chan *Connection),
		broadcast:      make(chan *outboundMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.CounselorID != "" {
				h.counselorConns[conn.CounselorID] = conn
				log.Printf("Counselor %s connected", conn.CounselorID)
			} else {
				h.studentConns[conn.StudentID] = conn
				log.Printf("Student %s connected", conn.StudentID)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.CounselorID != "" {
				if existing, ok := h.counselorConns[conn.CounselorID]; ok && existing == conn {
					delete(h.counselorConns, conn.CounselorID)
					close(conn.Send)
					log.Printf("Counselor %s disconnected", conn.CounselorID)
				}
			} else {
				if existing, ok := h.studentConns[conn.StudentID]; ok && existing == conn {
					delete(h.studentConns, conn.StudentID)
					close(conn.Send)
					log.Printf("Student %s disconnected", conn.StudentID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.message)

			if msg.toStudent != "" {
				if conn, ok := h.studentConns[msg.toStudent]; ok {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else {
				for _, conn := range h.counselorConns {
					select {
					case conn.Send <- data:
					default:
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToCounselors fans a message out to every connected counselor
// (implements service.AlertChannel).
func (h *Hub) BroadcastToCounselors(msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &outboundMessage{
		message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// NotifyStudent sends a message to one student session (implements
// service.AlertChannel).
func (h *Hub) NotifyStudent(studentID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &outboundMessage{
		toStudent: studentID,
		message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
