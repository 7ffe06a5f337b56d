package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"speakify/internal/domain"
	"speakify/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleVoice routes an inbound voice message. A pending broadcast or
// admin-chat relay accepts any content type, including voice; only the
// voice-answer state treats it as an answer to analyze.
func (h *Handler) handleVoice(c tele.Context) error {
	chatID := c.Sender().ID

	if h.cfg.IsAdmin(chatID) && h.sessions.AdminState(chatID).Kind == session.AdminAwaitingBroadcast {
		return h.runBroadcast(c)
	}

	switch h.sessions.UserState(chatID) {
	case session.UserAwaitingAdminMessage:
		return h.relayToAdmins(c)
	case session.UserAwaitingVoiceAnswer:
		return h.handleVoiceAnswer(c)
	}

	return nil
}

// handleMedia routes non-text, non-voice content. Only the broadcast
// and admin-chat states consume it; anything else is ignored.
func (h *Handler) handleMedia(c tele.Context) error {
	chatID := c.Sender().ID

	if h.cfg.IsAdmin(chatID) && h.sessions.AdminState(chatID).Kind == session.AdminAwaitingBroadcast {
		return h.runBroadcast(c)
	}

	if h.sessions.UserState(chatID) == session.UserAwaitingAdminMessage {
		return h.relayToAdmins(c)
	}

	return nil
}

// handleVoiceAnswer runs the AI check on a recorded answer. The chat is
// always returned to the main menu afterwards, whatever the outcome, so
// a failed analysis can never leave the user stuck.
func (h *Handler) handleVoiceAnswer(c tele.Context) error {
	chatID := c.Sender().ID
	voice := c.Message().Voice

	question, _ := h.sessions.Question(chatID)

	defer func() {
		h.sessions.ClearQuestion(chatID)
		if err := h.handleStart(c); err != nil {
			h.logger.Error("Failed to return chat to main menu", zap.Error(err))
		}
	}()

	if max := h.feedback.MaxDuration(); voice.Duration > max {
		return c.Send(fmt.Sprintf(
			"⚠️ Your voice message is too long (%ds). Please keep it under %d seconds.",
			voice.Duration, max,
		))
	}

	_ = c.Notify(tele.Typing)
	if err := c.Send("🎧 Got it! Analyzing your response now... this might take a moment."); err != nil {
		return err
	}
	_ = c.Notify(tele.RecordingAudio)

	feedback, err := h.feedback.Evaluate(context.Background(), question, voice.Duration, func() (io.ReadCloser, error) {
		return h.bot.File(&voice.File)
	})
	switch {
	case errors.Is(err, domain.ErrAIUnavailable):
		return c.Send("❌ Sorry, the AI examiner is unavailable right now. Please try again later.")
	case err != nil:
		h.logger.Error("Failed to analyze voice answer", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send("❌ Sorry, I couldn't process that. Please make sure the audio is clear and try again.")
	}

	return c.Send(feedback, tele.ModeMarkdown)
}
