package service

import (
	"speakify/internal/repository"

	"go.uber.org/zap"
)

// ActivityService tracks which chats have talked to the bot.
type ActivityService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(userRepo repository.UserRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Touch records an interaction from the chat. Idempotent upsert.
func (s *ActivityService) Touch(chatID int64) error {
	return s.userRepo.Touch(chatID)
}

// AllChatIDs returns every known chat id.
func (s *ActivityService) AllChatIDs() ([]int64, error) {
	return s.userRepo.AllChatIDs()
}
