package domain

import "errors"

// Sentinel errors returned by repositories and services. Handlers check
// them with errors.Is and translate them into user-facing replies;
// anything else is treated as an internal failure and reported
// generically.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrEmptyText     = errors.New("text is empty")
	ErrVoiceTooLong  = errors.New("voice message too long")
	ErrAIUnavailable = errors.New("ai service unavailable")
)
