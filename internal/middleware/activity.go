package middleware

import (
	"speakify/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Activity records user activity on every inbound event before the
// state machine sees it. A storage failure here is logged and never
// blocks handling.
func Activity(activity *service.ActivityService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				if err := activity.Touch(sender.ID); err != nil {
					logger.Error("Failed to record user activity",
						zap.Int64("chat_id", sender.ID),
						zap.Error(err),
					)
				}
			}
			return next(c)
		}
	}
}
