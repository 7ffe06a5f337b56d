package middleware

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover catches panics in handlers so one bad event can never take
// down the processing loop.
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic in handler",
						zap.Any("panic", r),
						zap.ByteString("stack", debug.Stack()),
					)
					err = fmt.Errorf("handler panic: %v", r)
				}
			}()
			return next(c)
		}
	}
}
