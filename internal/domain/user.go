package domain

import "time"

// User is a chat the bot has seen at least one message from.
type User struct {
	ChatID          int64
	FirstSeen       time.Time
	LastInteraction time.Time
}
