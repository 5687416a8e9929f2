package entities

import (
	"time"
)

// SessionStatus represents the lifecycle state of a mentorship chat session
type SessionStatus string

const (
	SessionStatusPendingPayment SessionStatus = "PENDING_PAYMENT"
	SessionStatusActive         SessionStatus = "ACTIVE"
	SessionStatusCompleted      SessionStatus = "COMPLETED"
)

// ChatSession records one booking of a mentor. Transitions follow
// PENDING_PAYMENT -> ACTIVE -> COMPLETED with no skips; COMPLETED is
// terminal. PricePaid is a snapshot of the mentor's price at booking time.
type ChatSession struct {
	ID        string        `json:"id"`
	MentorID  string        `json:"mentor_id"`
	UserEmail string        `json:"user_email"`
	Status    SessionStatus `json:"status"`
	PricePaid int           `json:"price_paid"`
	CreatedAt time.Time     `json:"created_at"`
}

// MessageSender identifies which side of the chat authored a message
type MessageSender string

const (
	MessageSenderUser   MessageSender = "user"
	MessageSenderMentor MessageSender = "mentor"
)

// ChatMessage is one message in a session's ledger. Append-only; messages
// may only be appended while the owning session is ACTIVE.
type ChatMessage struct {
	ID        string        `json:"id"`
	SessionID string        `json:"session_id"`
	Sender    MessageSender `json:"sender"`
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
}
