package session

import (
	"testing"

	"speakify/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStore_Defaults(t *testing.T) {
	s := NewStore()

	assert.Equal(t, UserNone, s.UserState(123))
	assert.Equal(t, AdminState{}, s.AdminState(123))

	_, ok := s.Question(123)
	assert.False(t, ok)
}

func TestStore_MutualExclusion(t *testing.T) {
	s := NewStore()
	chatID := int64(42)

	s.SetUserState(chatID, UserAwaitingVoiceAnswer)
	assert.Equal(t, UserAwaitingVoiceAnswer, s.UserState(chatID))

	// Entering the admin register clears the user register.
	s.SetAdminState(chatID, AdminState{Kind: AdminPanel})
	assert.Equal(t, AdminPanel, s.AdminState(chatID).Kind)
	assert.Equal(t, UserNone, s.UserState(chatID))

	// And vice versa.
	s.SetUserState(chatID, UserMainMenu)
	assert.Equal(t, UserMainMenu, s.UserState(chatID))
	assert.Equal(t, AdminNone, s.AdminState(chatID).Kind)
}

func TestStore_RegistersAreIndependentPerChat(t *testing.T) {
	s := NewStore()

	s.SetAdminState(1, AdminState{Kind: AdminAwaitingBroadcast})
	s.SetUserState(2, UserListing)

	assert.Equal(t, AdminAwaitingBroadcast, s.AdminState(1).Kind)
	assert.Equal(t, UserNone, s.UserState(1))
	assert.Equal(t, UserListing, s.UserState(2))
	assert.Equal(t, AdminNone, s.AdminState(2).Kind)
}

func TestStore_AdminStateCarriesCategory(t *testing.T) {
	s := NewStore()
	chatID := int64(7)

	s.SetAdminState(chatID, AdminState{Kind: AdminAwaitingAdd, Category: domain.Part2})

	st := s.AdminState(chatID)
	assert.Equal(t, AdminAwaitingAdd, st.Kind)
	assert.Equal(t, domain.Part2, st.Category)
}

func TestStore_QuestionLifecycle(t *testing.T) {
	s := NewStore()
	chatID := int64(9)

	s.SetQuestion(chatID, "Describe your hometown.")
	q, ok := s.Question(chatID)
	assert.True(t, ok)
	assert.Equal(t, "Describe your hometown.", q)

	// Each issuance overwrites the previous question.
	s.SetQuestion(chatID, "Talk about a book you read.")
	q, ok = s.Question(chatID)
	assert.True(t, ok)
	assert.Equal(t, "Talk about a book you read.", q)

	s.ClearQuestion(chatID)
	_, ok = s.Question(chatID)
	assert.False(t, ok)
}

func TestStore_QuestionSurvivesStateChanges(t *testing.T) {
	s := NewStore()
	chatID := int64(11)

	s.SetQuestion(chatID, "Describe a favorite place.")
	s.SetUserState(chatID, UserAwaitingVoiceAnswer)
	s.SetUserState(chatID, UserMainMenu)

	q, ok := s.Question(chatID)
	assert.True(t, ok)
	assert.Equal(t, "Describe a favorite place.", q)
}
