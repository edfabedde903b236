package assistant

import (
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry. The transcript is append-only: messages
// are never mutated or deleted, and it resets with the process.
type Message struct {
	ID        int64
	Role      Role
	Text      string
	Timestamp time.Time
}
