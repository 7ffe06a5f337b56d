package session

import "sync"

// Store holds per-chat conversation state: the admin register, the user
// register and the most recently issued practice question. State lives
// only in memory and is lost on restart.
//
// The store guarantees that at most one of the two registers is active
// for a chat: setting one always clears the other.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*entry
}

type entry struct {
	admin    AdminState
	user     UserStateKind
	question string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*entry)}
}

func (s *Store) session(chatID int64) *entry {
	e, ok := s.sessions[chatID]
	if !ok {
		e = &entry{}
		s.sessions[chatID] = e
	}
	return e
}

// UserState returns the user register for a chat, UserNone if unset.
func (s *Store) UserState(chatID int64) UserStateKind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.sessions[chatID]; ok {
		return e.user
	}
	return UserNone
}

// SetUserState sets the user register and clears the admin register.
func (s *Store) SetUserState(chatID int64, st UserStateKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.session(chatID)
	e.user = st
	e.admin = AdminState{}
}

// AdminState returns the admin register for a chat, AdminNone if unset.
func (s *Store) AdminState(chatID int64) AdminState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.sessions[chatID]; ok {
		return e.admin
	}
	return AdminState{}
}

// SetAdminState sets the admin register and clears the user register.
func (s *Store) SetAdminState(chatID int64, st AdminState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.session(chatID)
	e.admin = st
	e.user = UserNone
}

// SetQuestion stores the most recently issued question for a chat,
// overwriting any previous one.
func (s *Store) SetQuestion(chatID int64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(chatID).question = text
}

// Question returns the stored current question, if any.
func (s *Store) Question(chatID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.sessions[chatID]; ok && e.question != "" {
		return e.question, true
	}
	return "", false
}

// ClearQuestion drops the stored current question.
func (s *Store) ClearQuestion(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[chatID]; ok {
		e.question = ""
	}
}
