package handler

import (
	"errors"
	"fmt"
	"strconv"

	"speakify/internal/domain"
	"speakify/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdminText dispatches a text message by the admin register.
func (h *Handler) handleAdminText(c tele.Context, st session.AdminState, text string) error {
	switch st.Kind {
	case session.AdminPanel:
		return h.handlePanelMenu(c, text)
	case session.AdminSelectAddCategory,
		session.AdminSelectDeleteCategory,
		session.AdminSelectListCategory:
		return h.handleCategorySelection(c, st.Kind, text)
	case session.AdminAwaitingAdd:
		return h.handleAddInput(c, st.Category, text)
	case session.AdminAwaitingDeleteID:
		return h.handleDeleteInput(c, st.Category, text)
	case session.AdminAwaitingBroadcast:
		return h.runBroadcast(c)
	default:
		return h.handleStart(c)
	}
}

// handlePanelMenu fans the admin panel selections out to their flows.
func (h *Handler) handlePanelMenu(c tele.Context, text string) error {
	chatID := c.Sender().ID

	switch interpretAdminMenu(text) {
	case adminMenuAdd:
		h.sessions.SetAdminState(chatID, session.AdminState{Kind: session.AdminSelectAddCategory})
		return c.Send("Which part to add?", partSelectionMarkup(btnAdminMenuBack))

	case adminMenuDelete:
		h.sessions.SetAdminState(chatID, session.AdminState{Kind: session.AdminSelectDeleteCategory})
		return c.Send("Which part to delete?", partSelectionMarkup(btnAdminMenuBack))

	case adminMenuList:
		h.sessions.SetAdminState(chatID, session.AdminState{Kind: session.AdminSelectListCategory})
		return c.Send("Which part to list?", partSelectionMarkup(btnAdminMenuBack))

	case adminMenuStats:
		return h.sendStats(c)

	case adminMenuBroadcast:
		h.sessions.SetAdminState(chatID, session.AdminState{Kind: session.AdminAwaitingBroadcast})
		return c.Send("Send the message you want to broadcast (text, photo, etc.).", forceReply())

	case adminMenuBackToMain:
		return h.handleStart(c)

	default:
		return c.Send("Invalid option. Please use the menu or send a request like `1:25`.", tele.ModeMarkdown)
	}
}

// handleCategorySelection handles the part picker shown for the add,
// delete and list flows. An unrecognized selection keeps the state.
func (h *Handler) handleCategorySelection(c tele.Context, kind session.AdminStateKind, text string) error {
	chatID := c.Sender().ID

	if text == btnAdminMenuBack {
		return h.sendAdminMenu(c)
	}

	cat, ok := interpretPartSelection(text)
	if !ok {
		return c.Send("Invalid part.")
	}

	switch kind {
	case session.AdminSelectListCategory:
		if err := h.sendQuestionList(c, cat); err != nil {
			return err
		}
		return h.sendAdminMenu(c)

	case session.AdminSelectAddCategory:
		h.sessions.SetAdminState(chatID, session.AdminState{Kind: session.AdminAwaitingAdd, Category: cat})
		return c.Send(
			fmt.Sprintf("Send the new text for *Part %d*.", cat.Number()),
			forceReply(), tele.ModeMarkdown,
		)

	case session.AdminSelectDeleteCategory:
		if err := h.sendQuestionList(c, cat); err != nil {
			return err
		}
		h.sessions.SetAdminState(chatID, session.AdminState{Kind: session.AdminAwaitingDeleteID, Category: cat})
		return c.Send(
			fmt.Sprintf("Send the *ID* of the item to delete from *Part %d*.", cat.Number()),
			forceReply(), tele.ModeMarkdown,
		)
	}

	return nil
}

// handleAddInput attempts the add and always returns to the panel.
func (h *Handler) handleAddInput(c tele.Context, cat domain.Category, text string) error {
	err := h.catalog.AddQuestion(cat, text)

	var reply string
	switch {
	case err == nil:
		reply = "Question added successfully!"
	case errors.Is(err, domain.ErrEmptyText):
		reply = "Input cannot be empty."
	case errors.Is(err, domain.ErrAlreadyExists):
		reply = "Question already exists."
	default:
		h.logger.Error("Failed to add question",
			zap.String("category", cat.Table()),
			zap.Error(err),
		)
		reply = "An error occurred."
	}

	if err := c.Send(reply); err != nil {
		return err
	}
	return h.sendAdminMenu(c)
}

// handleDeleteInput parses the id and attempts the delete. Non-integer
// input re-prompts without changing state; a parsed id always falls
// back to the panel, found or not.
func (h *Handler) handleDeleteInput(c tele.Context, cat domain.Category, text string) error {
	id, err := strconv.Atoi(text)
	if err != nil {
		return c.Send("Invalid ID. Please send a number.")
	}

	var reply string
	switch err := h.catalog.DeleteQuestion(cat, id); {
	case err == nil:
		reply = "Question deleted successfully!"
	case errors.Is(err, domain.ErrNotFound):
		reply = "Question ID not found."
	default:
		h.logger.Error("Failed to delete question",
			zap.String("category", cat.Table()),
			zap.Int("id", id),
			zap.Error(err),
		)
		reply = "An error occurred."
	}

	if err := c.Send(reply); err != nil {
		return err
	}
	return h.sendAdminMenu(c)
}

// handleLookupShortcut serves the "<part>:<id>" quick lookup.
func (h *Handler) handleLookupShortcut(c tele.Context, part, id int) error {
	cat, ok := domain.CategoryFromNumber(part)
	if !ok {
		return c.Send(fmt.Sprintf("Invalid part number: %d. Please use 1, 2, or 3.", part))
	}

	text, err := h.catalog.QuestionByID(cat, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Send(fmt.Sprintf("⚠️ No item found with ID %d.", id))
	case err != nil:
		h.logger.Error("Failed to look up question",
			zap.String("category", cat.Table()),
			zap.Int("id", id),
			zap.Error(err),
		)
		return c.Send(genericErrorMsg)
	}

	return c.Send(
		fmt.Sprintf("💬 *%s (ID: %d)*:\n\n%s", cat.Label(), id, text),
		tele.ModeMarkdown,
	)
}

// sendStats shows the usage and content statistics screen.
func (h *Handler) sendStats(c tele.Context) error {
	summary, err := h.stats.Summary()
	if err != nil {
		h.logger.Error("Failed to collect statistics", zap.Error(err))
		if err := c.Send(genericErrorMsg); err != nil {
			return err
		}
		return h.sendAdminMenu(c)
	}

	text := fmt.Sprintf(
		"📊 *Bot Statistics*\n\n"+
			"👥 Total Users: *%d*\n"+
			"☀️ DAU: *%d* | 🗓️ WAU: *%d* | 📅 MAU: *%d*\n\n"+
			"*--- Content ---*\n"+
			"1️⃣ Part 1: *%d*\n"+
			"2️⃣ Part 2: *%d*\n"+
			"3️⃣ Part 3: *%d*",
		summary.TotalUsers,
		summary.DailyActive, summary.WeeklyActive, summary.MonthlyActive,
		summary.QuestionCount[domain.Part1],
		summary.QuestionCount[domain.Part2],
		summary.QuestionCount[domain.Part3],
	)

	if err := c.Send(text, tele.ModeMarkdown); err != nil {
		return err
	}
	return h.sendAdminMenu(c)
}
