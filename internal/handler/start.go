package handler

import (
	"fmt"

	"malalingo/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	ctx, cancel := requestContext()
	defer cancel()

	// Restore a previously stored session
	client := h.authService.Session(userID)
	if client.User() == nil {
		client.CheckAuth(ctx)
	}

	h.ResetState(userID)
	authed := client.IsAuthenticated()
	return h.reply(c, homeText(authed), mainMenuMarkup(authed))
}

func homeText(signedIn bool) string {
	text := fmt.Sprintf("🏠 %s\n\nLearn Malayalam words by matching and flipping cards.", session.RouteHome.DisplayTitle())
	if !signedIn {
		text += "\n\nLog in or use the magic word to open your dashboard."
	}
	return text
}

// handleDashboard shows the signed-in user's account
func (h *Handler) handleDashboard(c tele.Context) error {
	user := h.authService.Session(c.Sender().ID).User()
	if user == nil {
		return h.handleLoginPrompt(c)
	}

	text := fmt.Sprintf("📊 %s\n\n📧 %s", session.RouteDashboard.DisplayTitle(), user.Email)
	if user.CreatedAt != "" {
		text += fmt.Sprintf("\n📅 Member since %s", user.CreatedAt)
	}
	return h.reply(c, text, mainMenuMarkup(true))
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	authed := h.authService.Session(userID).IsAuthenticated()
	return h.reply(c, homeText(authed), mainMenuMarkup(authed))
}
