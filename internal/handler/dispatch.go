package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// runBroadcast fans the received message out to every known user and
// reports a success/failure summary, then returns to the panel.
func (h *Handler) runBroadcast(c tele.Context) error {
	chatID := c.Sender().ID
	h.logger.Info("Admin initiated broadcast", zap.Int64("admin_id", chatID))

	if err := c.Send("Broadcasting your message to all users... This may take a moment."); err != nil {
		return err
	}

	msg := c.Message()
	result, err := h.bcast.Broadcast(chatID, func(target int64) error {
		_, err := h.bot.Copy(tele.ChatID(target), msg)
		return err
	})
	if err != nil {
		h.logger.Error("Broadcast failed", zap.Error(err))
		if err := c.Send(genericErrorMsg); err != nil {
			return err
		}
		return h.sendAdminMenu(c)
	}

	summary := fmt.Sprintf(
		"📢 *Broadcast Complete*\n\n✅ Sent successfully to: *%d* users.\n❌ Failed for: *%d* users.",
		result.Sent, result.Failed,
	)
	if err := c.Send(summary, tele.ModeMarkdown); err != nil {
		return err
	}
	return h.sendAdminMenu(c)
}

// relayToAdmins forwards the user's message to every configured admin
// with an attribution header, confirms to the user, and resets the chat
// to the main menu. Admin delivery failures are only logged.
func (h *Handler) relayToAdmins(c tele.Context) error {
	sender := c.Sender()

	name := sender.FirstName
	if sender.LastName != "" {
		name += " " + sender.LastName
	}
	handle := ""
	if sender.Username != "" {
		handle = fmt.Sprintf(" (@%s)", sender.Username)
	}
	header := fmt.Sprintf("👤 *New message from %s%s* (ID: `%d`):", name, handle, sender.ID)

	msg := c.Message()
	h.bcast.RelayToAdmins(func(adminID int64) error {
		if _, err := h.bot.Send(tele.ChatID(adminID), header, tele.ModeMarkdown); err != nil {
			return err
		}
		_, err := h.bot.Copy(tele.ChatID(adminID), msg)
		return err
	})

	if err := c.Send("✅ Your message has been sent to the admin team!", removeKeyboard()); err != nil {
		return err
	}
	return h.handleStart(c)
}
