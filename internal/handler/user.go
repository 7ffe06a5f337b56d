package handler

import (
	"errors"
	"fmt"

	"speakify/internal/domain"
	"speakify/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleUserText dispatches a text message by the user register. An
// unknown register falls open to the main menu, never to a stuck state.
func (h *Handler) handleUserText(c tele.Context, text string) error {
	chatID := c.Sender().ID

	switch h.sessions.UserState(chatID) {
	case session.UserMainMenu:
		return h.handleMainMenu(c, text)

	case session.UserListing:
		return h.handleListingMenu(c, text)

	case session.UserAwaitingAdminMessage:
		if text == btnCancel {
			if err := c.Send("❌ Chat with admin cancelled.", removeKeyboard()); err != nil {
				return err
			}
			return h.handleStart(c)
		}
		return h.relayToAdmins(c)

	case session.UserAwaitingVoiceAnswer:
		if text == btnCancel {
			h.sessions.ClearQuestion(chatID)
			if err := c.Send("❌ AI Check cancelled.", removeKeyboard()); err != nil {
				return err
			}
			return h.handleStart(c)
		}
		return c.Send("Please send a *voice message* or press '❌ Cancel' to go back.", tele.ModeMarkdown)

	default:
		return h.handleStart(c)
	}
}

func (h *Handler) handleMainMenu(c tele.Context, text string) error {
	chatID := c.Sender().ID
	cmd := interpretMainMenu(text)

	switch cmd.action {
	case mainMenuRandomQuestion:
		return h.sendRandomQuestion(c, cmd.category, false)

	case mainMenuListAll:
		h.sessions.SetUserState(chatID, session.UserListing)
		return c.Send("Which part's questions would you like to see?", partSelectionMarkup(btnMainMenuBack))

	case mainMenuChatAdmin:
		h.sessions.SetUserState(chatID, session.UserAwaitingAdminMessage)
		return c.Send(
			"📝 Send me your message for the admin team. I will forward it. Or, press '❌ Cancel' to go back.",
			cancelMarkup(),
		)

	default:
		return c.Send("Sorry, I didn't understand that. Please use the buttons on the keyboard or type /start to begin.")
	}
}

func (h *Handler) handleListingMenu(c tele.Context, text string) error {
	if text == btnMainMenuBack {
		return h.handleStart(c)
	}

	cat, ok := interpretPartSelection(text)
	if !ok {
		return c.Send("Please choose a valid part from the menu.")
	}

	if err := h.sendQuestionList(c, cat); err != nil {
		return err
	}
	return c.Send("Use the buttons above to navigate the list. You can select another part from the menu below.")
}

// sendRandomQuestion issues a random question from the category and
// stores it as the chat's current question. With edit set, the existing
// message is rewritten in place (the "Get Another Question" flow).
func (h *Handler) sendRandomQuestion(c tele.Context, cat domain.Category, edit bool) error {
	chatID := c.Sender().ID

	question, err := h.catalog.RandomQuestion(cat)
	if errors.Is(err, domain.ErrNotFound) {
		if edit {
			return c.Respond(&tele.CallbackResponse{Text: "No questions found.", ShowAlert: true})
		}
		return c.Send("No questions found.")
	}
	if err != nil {
		h.logger.Error("Failed to get random question",
			zap.String("category", cat.Table()),
			zap.Error(err),
		)
		if edit {
			return c.Respond(&tele.CallbackResponse{Text: genericErrorMsg})
		}
		return c.Send(genericErrorMsg)
	}

	h.sessions.SetQuestion(chatID, question)

	text := fmt.Sprintf("💬 *Part %d Question:*\n\n%s", cat.Number(), question)
	markup := questionMarkup(cat)

	if edit {
		if err := c.Edit(text, markup, tele.ModeMarkdown); err != nil {
			if handleErr := h.handleEditError(err, c); handleErr == nil {
				return nil
			}
			return c.Send(text, markup, tele.ModeMarkdown)
		}
		return c.Respond()
	}
	return c.Send(text, markup, tele.ModeMarkdown)
}
