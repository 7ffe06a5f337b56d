package handler

import (
	"speakify/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start. It is a hard reset: the admin register is
// cleared, the user register goes to the main menu, and it is allowed
// from any prior state.
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Sender().ID

	h.logger.Info("User entered main menu",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	h.sessions.SetUserState(chatID, session.UserMainMenu)

	return c.Send(
		"Welcome to the *SPEAKIFY BOT*! 🤖\n\nSelect a part to get a random practice question.",
		mainMenuMarkup(),
		tele.ModeMarkdown,
	)
}

// handleAdmin handles /admin. Non-admin identities are rejected with no
// state change.
func (h *Handler) handleAdmin(c tele.Context) error {
	userID := c.Sender().ID

	if !h.cfg.IsAdmin(userID) {
		h.logger.Warn("Unauthorized /admin attempt", zap.Int64("chat_id", userID))
		return c.Send("⛔ Unauthorized.")
	}

	h.logger.Info("Admin entered admin panel", zap.Int64("admin_id", userID))
	return h.sendAdminMenu(c)
}

// sendAdminMenu puts the chat into the admin panel and shows its menu.
// Entering the admin register clears the user register.
func (h *Handler) sendAdminMenu(c tele.Context) error {
	h.sessions.SetAdminState(c.Sender().ID, session.AdminState{Kind: session.AdminPanel})
	return c.Send("Welcome to the Admin Panel!", adminMenuMarkup())
}
