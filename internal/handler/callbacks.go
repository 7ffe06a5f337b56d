package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"speakify/internal/domain"
	"speakify/internal/pagination"
	"speakify/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleEditError handles errors from c.Edit(). Re-rendering identical
// content makes the transport report "message is not modified"; that is
// not a failure, so the callback is just acknowledged. Other errors are
// returned so the caller can fall back to sending a new message.
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", c.Sender().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// renderQuestionList renders one page of a category's catalog plus its
// navigation controls. Returns domain.ErrNotFound for an empty catalog.
func (h *Handler) renderQuestionList(cat domain.Category, page int) (string, *tele.ReplyMarkup, error) {
	questions, err := h.catalog.ListQuestions(cat)
	if err != nil {
		return "", nil, err
	}
	if len(questions) == 0 {
		return "", nil, domain.ErrNotFound
	}

	p := pagination.Paginate(questions, page, h.cfg.QuestionsPerPage)

	lines := make([]string, 0, len(p.Items))
	for _, q := range p.Items {
		lines = append(lines, fmt.Sprintf("*ID: %d* — %s", q.ID, q.Text))
	}

	text := fmt.Sprintf("📋 *%s* (Page %d/%d):\n\n%s",
		cat.Title(), p.Number, p.Total, strings.Join(lines, "\n\n"))

	return text, paginationMarkup(p, cat), nil
}

// sendQuestionList sends the first page of a category as a new message.
func (h *Handler) sendQuestionList(c tele.Context, cat domain.Category) error {
	text, markup, err := h.renderQuestionList(cat, 1)
	if errors.Is(err, domain.ErrNotFound) {
		return c.Send(fmt.Sprintf("No %s found.", cat.Title()))
	}
	if err != nil {
		h.logger.Error("Failed to list questions",
			zap.String("category", cat.Table()),
			zap.Error(err),
		)
		return c.Send(genericErrorMsg)
	}
	return c.Send(text, markup, tele.ModeMarkdown)
}

// handlePagination serves the prev/next buttons by editing the list
// message in place. Callback data carries (targetPage, category).
func (h *Handler) handlePagination(c tele.Context) error {
	args := c.Args()
	if len(args) != 2 {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page."})
	}

	page, err := strconv.Atoi(args[0])
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page."})
	}
	cat, ok := domain.CategoryFromKey(args[1])
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid category."})
	}

	text, markup, err := h.renderQuestionList(cat, page)
	if errors.Is(err, domain.ErrNotFound) {
		return c.Respond(&tele.CallbackResponse{Text: fmt.Sprintf("No %s found.", cat.Title())})
	}
	if err != nil {
		h.logger.Error("Failed to paginate questions",
			zap.String("category", cat.Table()),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: genericErrorMsg})
	}

	if err := c.Edit(text, markup, tele.ModeMarkdown); err != nil {
		if handleErr := h.handleEditError(err, c); handleErr == nil {
			return nil
		}
		return c.Send(text, markup, tele.ModeMarkdown)
	}
	return c.Respond()
}

// handleRandomCallback re-rolls the question in place.
func (h *Handler) handleRandomCallback(c tele.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid category."})
	}
	cat, ok := domain.CategoryFromKey(args[0])
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid category."})
	}

	return h.sendRandomQuestion(c, cat, true)
}

// handleAICheck arms the voice-answer flow for the chat's current
// question.
func (h *Handler) handleAICheck(c tele.Context) error {
	chatID := c.Sender().ID

	h.sessions.SetUserState(chatID, session.UserAwaitingVoiceAnswer)

	minutes := h.feedback.MaxDuration() / 60
	text := fmt.Sprintf(
		"🎤 *AI Examiner is ready!*\n\nPlease send me a *voice message* with your answer (max %d minutes).\n\n"+
			"I will analyze it and give you direct feedback and a model answer. Press '❌ Cancel' to return to the main menu.",
		minutes,
	)
	if err := c.Send(text, cancelMarkup(), tele.ModeMarkdown); err != nil {
		return err
	}
	return c.Respond()
}

func (h *Handler) handleUnknownCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}
	h.logger.Warn("Unhandled callback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
