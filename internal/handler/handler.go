package handler

import (
	"context"
	"sync"
	"time"

	"malalingo/internal/domain"
	"malalingo/internal/middleware"
	"malalingo/internal/service"
	"malalingo/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const requestTimeout = 20 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	gameService *service.GameService
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	gameService *service.GameService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		gameService: gameService,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.EnsureUser(h.authService, h.logger))

	dashboard := middleware.RouteGuard(h.authService, session.RouteDashboard, h.handleLoginPrompt, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/login", h.handleLogin)
	h.bot.Handle("/signup", h.handleSignup)
	h.bot.Handle("/magic", h.handleMagic)
	h.bot.Handle("/logout", h.handleLogout)
	h.bot.Handle("/match", h.handleMatching)
	h.bot.Handle("/flip", h.handleFlip)
	h.bot.Handle("/dashboard", h.handleDashboard, dashboard)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLogin, h.handleLogin)
	h.bot.Handle(&btnSignup, h.handleSignup)
	h.bot.Handle(&btnMagic, h.handleMagic)
	h.bot.Handle(&btnLogout, h.handleLogout)
	h.bot.Handle(&btnMatching, h.handleMatching)
	h.bot.Handle(&btnFlip, h.handleFlip)
	h.bot.Handle(&btnDashboard, h.handleDashboard, dashboard)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)
	h.bot.Handle(&btnMatchPick, h.handleMatchPick)
	h.bot.Handle(&btnMatchReset, h.handleMatchReset)
	h.bot.Handle(&btnFlipCard, h.handleFlipCard)
	h.bot.Handle(&btnFlipReset, h.handleFlipReset)

	// Generic callback handler for anything not matched above
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// Inline keyboard buttons
var (
	btnLogin = tele.Btn{
		Unique: "login",
		Text:   "🔑 Log in",
	}
	btnSignup = tele.Btn{
		Unique: "signup",
		Text:   "📝 Sign up",
	}
	btnMagic = tele.Btn{
		Unique: "magic",
		Text:   "✨ Magic word",
	}
	btnLogout = tele.Btn{
		Unique: "logout",
		Text:   "🚪 Log out",
	}
	btnMatching = tele.Btn{
		Unique: "matching",
		Text:   "🔤 Word matching",
	}
	btnFlip = tele.Btn{
		Unique: "flip_test",
		Text:   "🃏 Flip test",
	}
	btnDashboard = tele.Btn{
		Unique: "dashboard",
		Text:   "📊 Dashboard",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}

	// Dynamic buttons, payload is carried in callback data
	btnMatchPick  = tele.Btn{Unique: "match"}
	btnMatchReset = tele.Btn{Unique: "match_reset"}
	btnFlipCard   = tele.Btn{Unique: "flip"}
	btnFlipReset  = tele.Btn{Unique: "flip_reset"}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup(authenticated bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{
		menu.Row(btnMatching, btnFlip),
	}
	if authenticated {
		rows = append(rows, menu.Row(btnDashboard), menu.Row(btnLogout))
	} else {
		rows = append(rows, menu.Row(btnLogin, btnSignup), menu.Row(btnMagic))
	}
	menu.Inline(rows...)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

// reply edits the message behind a callback, or sends a new one for commands
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}
