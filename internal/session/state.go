package session

import "speakify/internal/domain"

// AdminStateKind enumerates the steps of the admin conversation.
type AdminStateKind int

const (
	AdminNone AdminStateKind = iota
	AdminPanel
	AdminSelectAddCategory
	AdminSelectDeleteCategory
	AdminSelectListCategory
	AdminAwaitingBroadcast
	AdminAwaitingAdd
	AdminAwaitingDeleteID
)

// AdminState is the admin register value: a step plus the category it
// operates on. Category is only meaningful for AdminAwaitingAdd and
// AdminAwaitingDeleteID.
type AdminState struct {
	Kind     AdminStateKind
	Category domain.Category
}

// UserStateKind enumerates the steps of the plain-user conversation.
// UserNone means the chat has no active user register, either because
// the bot has never seen it or because the admin register is active.
type UserStateKind int

const (
	UserNone UserStateKind = iota
	UserMainMenu
	UserListing
	UserAwaitingAdminMessage
	UserAwaitingVoiceAnswer
)
