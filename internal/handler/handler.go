package handler

import (
	"speakify/internal/config"
	"speakify/internal/service"
	"speakify/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const genericErrorMsg = "Something went wrong. Please try again later."

// Services bundles the application services the handler dispatches to.
type Services struct {
	Catalog   *service.CatalogService
	Stats     *service.StatsService
	Broadcast *service.BroadcastService
	Feedback  *service.FeedbackService
}

// Handler manages all bot interactions. Which method interprets an
// inbound message is decided by the chat's session registers.
type Handler struct {
	bot      *tele.Bot
	catalog  *service.CatalogService
	stats    *service.StatsService
	bcast    *service.BroadcastService
	feedback *service.FeedbackService
	sessions *session.Store
	cfg      *config.Config
	logger   *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(
	bot *tele.Bot,
	svc Services,
	sessions *session.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		catalog:  svc.Catalog,
		stats:    svc.Stats,
		bcast:    svc.Broadcast,
		feedback: svc.Feedback,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/admin", h.handleAdmin)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Voice answers, plus any media while a broadcast or admin-chat
	// message is awaited
	h.bot.Handle(tele.OnVoice, h.handleVoice)
	for _, endpoint := range []string{
		tele.OnPhoto, tele.OnVideo, tele.OnDocument, tele.OnAudio, tele.OnSticker,
	} {
		h.bot.Handle(endpoint, h.handleMedia)
	}

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPage, h.handlePagination)
	h.bot.Handle(&btnRandom, h.handleRandomCallback)
	h.bot.Handle(&btnAICheck, h.handleAICheck)
	h.bot.Handle(tele.OnCallback, h.handleUnknownCallback)
}

// handleText routes a plain text message through the state machine.
// For admins the "<part>:<id>" lookup shortcut is checked first and
// wins over any register state.
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Sender().ID
	text := trimmedText(c)

	if h.cfg.IsAdmin(chatID) {
		if part, id, ok := parseLookupShortcut(text); ok {
			return h.handleLookupShortcut(c, part, id)
		}
		if st := h.sessions.AdminState(chatID); st.Kind != session.AdminNone {
			return h.handleAdminText(c, st, text)
		}
	}

	return h.handleUserText(c, text)
}
