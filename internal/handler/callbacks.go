package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"malalingo/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseMatchData reads "<round>|<side>|<item id>"
func parseMatchData(data string) (string, domain.Side, int, error) {
	parts := strings.Split(data, "|")
	if len(parts) != 3 || parts[0] == "" {
		return "", "", 0, fmt.Errorf("malformed match data %q", data)
	}

	var side domain.Side
	switch parts[1] {
	case sideCodeMalayalam:
		side = domain.SideMalayalam
	case sideCodeEnglish:
		side = domain.SideEnglish
	default:
		return "", "", 0, fmt.Errorf("unknown side %q", parts[1])
	}

	id, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", "", 0, fmt.Errorf("bad item id: %w", err)
	}
	return parts[0], side, id, nil
}

// parseFlipData reads "<round>|<card id>"
func parseFlipData(data string) (string, int, error) {
	parts := strings.Split(data, "|")
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, fmt.Errorf("malformed flip data %q", data)
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("bad card id: %w", err)
	}
	return parts[0], id, nil
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Tapping the same button twice leaves the board unchanged
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback catches callbacks no button handler claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Buttons sent without a unique prefix carry it as plain data
	unique := callback.Unique
	if unique == "" {
		unique = data
	}

	switch unique {
	case btnMatching.Unique:
		return h.handleMatching(c)
	case btnFlip.Unique:
		return h.handleFlip(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
