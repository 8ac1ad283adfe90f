package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message senders. A message either came from the advisor model or from the
// node's owner.
const (
	SenderAI   = "AI"
	SenderUser = "You"
)

// Message is a single turn in a node's conversation.
type Message struct {
	ID        uuid.UUID // The unique identifier for the message.
	NodeID    uuid.UUID // Links the message to its parent Node.
	Sender    string    // SenderAI or SenderUser.
	Content   string    // Message body.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidSender reports whether s is one of the accepted sender values.
func ValidSender(s string) bool {
	return s == SenderAI || s == SenderUser
}
