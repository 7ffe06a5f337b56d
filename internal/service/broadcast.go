package service

import (
	"time"

	"speakify/internal/repository"

	"go.uber.org/zap"
)

// SendFunc delivers the current message to a single chat. The handler
// supplies a closure wrapping the transport's copy call so the service
// stays independent of the transport library.
type SendFunc func(chatID int64) error

// BroadcastResult counts per-target delivery outcomes of one broadcast.
type BroadcastResult struct {
	Sent   int
	Failed int
}

// BroadcastService fans an admin message out to every known user and
// relays user messages to the admin team.
type BroadcastService struct {
	userRepo repository.UserRepository
	adminIDs []int64
	delay    time.Duration
	logger   *zap.Logger
}

// NewBroadcastService creates a new broadcast service. delay is the
// pause between consecutive sends, keeping under transport rate limits.
func NewBroadcastService(userRepo repository.UserRepository, adminIDs []int64, delay time.Duration, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		userRepo: userRepo,
		adminIDs: adminIDs,
		delay:    delay,
		logger:   logger,
	}
}

// Broadcast sends to every known chat except the initiator. One
// target's failure never aborts the remaining targets; failures are
// only counted and logged.
func (s *BroadcastService) Broadcast(initiator int64, send SendFunc) (BroadcastResult, error) {
	ids, err := s.userRepo.AllChatIDs()
	if err != nil {
		return BroadcastResult{}, err
	}

	var result BroadcastResult
	for _, chatID := range ids {
		if chatID == initiator {
			continue
		}

		if err := send(chatID); err != nil {
			s.logger.Warn("Failed to deliver broadcast",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			result.Failed++
			continue
		}

		result.Sent++
		time.Sleep(s.delay)
	}

	s.logger.Info("Broadcast complete",
		zap.Int64("initiator", initiator),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// RelayToAdmins delivers to every configured admin independently and
// returns how many deliveries succeeded. Failures are only logged.
func (s *BroadcastService) RelayToAdmins(send SendFunc) int {
	delivered := 0
	for _, adminID := range s.adminIDs {
		if err := send(adminID); err != nil {
			s.logger.Warn("Failed to relay message to admin",
				zap.Int64("admin_id", adminID),
				zap.Error(err),
			)
			continue
		}
		delivered++
	}
	return delivered
}
