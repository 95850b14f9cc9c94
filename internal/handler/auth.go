package handler

import (
	"fmt"
	"strings"

	"malalingo/internal/domain"
	"malalingo/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLogin starts the login flow
func (h *Handler) handleLogin(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{
		State:  domain.StateWaitingEmail,
		Action: domain.ActionLogin,
	})
	return h.reply(c, fmt.Sprintf("🔑 %s\n\nSend your email:", session.RouteLogin.DisplayTitle()), cancelMarkup())
}

// handleSignup starts the signup flow
func (h *Handler) handleSignup(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{
		State:  domain.StateWaitingEmail,
		Action: domain.ActionSignup,
	})
	return h.reply(c, fmt.Sprintf("📝 %s\n\nSend your email:", session.RouteSignup.DisplayTitle()), cancelMarkup())
}

// handleMagic asks for the magic word
func (h *Handler) handleMagic(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingMagicword})
	return h.reply(c, "✨ Send the magic word:", cancelMarkup())
}

// handleLogout forgets the session
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	h.authService.Logout(ctx, userID)
	h.ResetState(userID)

	h.logger.Info("User logged out", zap.Int64("user_id", userID))
	return h.reply(c, "👋 Logged out.\n\n"+homeText(false), mainMenuMarkup(false))
}

// handleLoginPrompt is shown when a guarded screen needs a session
func (h *Handler) handleLoginPrompt(c tele.Context) error {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnLogin, btnMagic),
		markup.Row(btnMainMenu),
	)
	return h.reply(c, "🔒 Please log in to open this page.", markup)
}

// textStep is what a text message asks the bot to do next
type textStep int

const (
	stepMenu textStep = iota
	stepBadEmail
	stepAskPassword
	stepLogin
	stepSignup
	stepMagicword
)

// advanceText moves the credential state machine on by one message
func advanceText(state *domain.StateData, text string) (*domain.StateData, textStep) {
	switch state.State {
	case domain.StateWaitingEmail:
		if !strings.Contains(text, "@") {
			return state, stepBadEmail
		}
		return &domain.StateData{
			State:  domain.StateWaitingPassword,
			Action: state.Action,
			Email:  text,
		}, stepAskPassword

	case domain.StateWaitingPassword:
		idle := &domain.StateData{State: domain.StateIdle}
		if state.Action == domain.ActionSignup {
			return idle, stepSignup
		}
		return idle, stepLogin

	case domain.StateWaitingMagicword:
		return &domain.StateData{State: domain.StateIdle}, stepMagicword

	default:
		return &domain.StateData{State: domain.StateIdle}, stepMenu
	}
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)
	next, step := advanceText(state, text)
	h.SetState(userID, next)

	switch step {
	case stepBadEmail:
		return c.Send("That doesn't look like an email. Try again:", cancelMarkup())
	case stepAskPassword:
		return c.Send("Now send your password:", cancelMarkup())
	case stepLogin, stepSignup:
		// Keep the password out of the chat history
		if err := c.Delete(); err != nil {
			h.logger.Warn("Failed to delete password message", zap.Error(err))
		}
		if step == stepSignup {
			return h.signup(c, state.Email, text)
		}
		return h.login(c, state.Email, text)
	case stepMagicword:
		return h.magicword(c, text)
	default:
		return c.Send("Use the menu below to pick a game.", mainMenuMarkup(h.authService.Session(userID).IsAuthenticated()))
	}
}

func (h *Handler) login(c tele.Context, email, password string) error {
	userID := c.Sender().ID
	client := h.authService.Session(userID)

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.Login(ctx, email, password)
	if err != nil {
		h.logger.Warn("Login failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("❌ "+client.Err(), retryMarkup(btnLogin))
	}

	h.logger.Info("User logged in", zap.Int64("user_id", userID))
	return c.Send(fmt.Sprintf("✅ Welcome, %s!\n\n%s", displayEmail(resp.User, email), homeText(true)), mainMenuMarkup(true))
}

func (h *Handler) signup(c tele.Context, email, password string) error {
	userID := c.Sender().ID
	client := h.authService.Session(userID)

	ctx, cancel := requestContext()
	defer cancel()

	if _, err := client.Signup(ctx, email, password); err != nil {
		h.logger.Warn("Signup failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("❌ "+client.Err(), retryMarkup(btnSignup))
	}

	h.logger.Info("User signed up", zap.Int64("user_id", userID))
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnLogin), markup.Row(btnMainMenu))
	return c.Send("✅ Account created. Log in to continue.", markup)
}

func (h *Handler) magicword(c tele.Context, word string) error {
	userID := c.Sender().ID
	client := h.authService.Session(userID)

	ctx, cancel := requestContext()
	defer cancel()

	if _, err := client.CheckMagicword(ctx, word); err != nil {
		h.logger.Warn("Magic word rejected", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("❌ "+client.Err(), retryMarkup(btnMagic))
	}

	h.logger.Info("User unlocked with magic word", zap.Int64("user_id", userID))
	return c.Send("✨ Magic word accepted!\n\n"+homeText(true), mainMenuMarkup(true))
}

func retryMarkup(retry tele.Btn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(retry), markup.Row(btnMainMenu))
	return markup
}

func displayEmail(user *domain.User, fallback string) string {
	if user != nil && user.Email != "" {
		return user.Email
	}
	return fallback
}
