package handler

import (
	"errors"

	"malalingo/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleMatching starts a new matching round
func (h *Handler) handleMatching(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	board, err := h.gameService.StartMatching(ctx, userID)
	if err != nil {
		return h.gameLoadError(c, err)
	}
	return h.reply(c, matchBoardText(board), matchBoardMarkup(board))
}

// handleMatchPick handles a tap on a word of the matching board
func (h *Handler) handleMatchPick(c tele.Context) error {
	userID := c.Sender().ID

	round, side, itemID, err := parseMatchData(cleanCallbackData(c.Data()))
	if err != nil {
		h.logger.Warn("Bad match callback", zap.String("data", c.Data()), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Unknown button"})
	}

	board, err := h.gameService.PickMatch(userID, round, side, itemID)
	if err != nil {
		return h.roundError(c, err)
	}
	return h.reply(c, matchBoardText(board), matchBoardMarkup(board))
}

// handleMatchReset clears the current matching round
func (h *Handler) handleMatchReset(c tele.Context) error {
	board, err := h.gameService.ResetMatching(c.Sender().ID, cleanCallbackData(c.Data()))
	if err != nil {
		return h.roundError(c, err)
	}
	return h.reply(c, matchBoardText(board), matchBoardMarkup(board))
}

// handleFlip starts a new flip round
func (h *Handler) handleFlip(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	board, err := h.gameService.StartFlip(ctx, userID)
	if err != nil {
		return h.gameLoadError(c, err)
	}
	return h.reply(c, flipBoardText(board), flipBoardMarkup(board))
}

// handleFlipCard turns one card over
func (h *Handler) handleFlipCard(c tele.Context) error {
	round, cardID, err := parseFlipData(cleanCallbackData(c.Data()))
	if err != nil {
		h.logger.Warn("Bad flip callback", zap.String("data", c.Data()), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Unknown button"})
	}

	board, err := h.gameService.FlipCard(c.Sender().ID, round, cardID)
	if err != nil {
		return h.roundError(c, err)
	}
	return h.reply(c, flipBoardText(board), flipBoardMarkup(board))
}

// handleFlipReset turns every card face down
func (h *Handler) handleFlipReset(c tele.Context) error {
	board, err := h.gameService.ResetFlip(c.Sender().ID, cleanCallbackData(c.Data()))
	if err != nil {
		return h.roundError(c, err)
	}
	return h.reply(c, flipBoardText(board), flipBoardMarkup(board))
}

func (h *Handler) gameLoadError(c tele.Context, err error) error {
	text := "⚠️ Could not load words. Please try again later."
	if errors.Is(err, service.ErrNoWords) {
		text = "No words available yet."
	} else {
		h.logger.Error("Failed to start round", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
	}

	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

func (h *Handler) roundError(c tele.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNoRound), errors.Is(err, service.ErrStaleRound):
		return c.Respond(&tele.CallbackResponse{
			Text:      "This round is over. Start a new one from the menu.",
			ShowAlert: true,
		})
	case errors.Is(err, service.ErrUnknownItem):
		return c.Respond(&tele.CallbackResponse{Text: "Unknown word"})
	}

	h.logger.Error("Round update failed", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
	return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
}
