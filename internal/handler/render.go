package handler

import (
	"fmt"
	"strconv"
	"strings"

	"malalingo/internal/domain"
	"malalingo/internal/game"
	"malalingo/internal/service"
	"malalingo/internal/session"

	tele "gopkg.in/telebot.v3"
)

// Side codes keep callback data under Telegram's 64 byte limit
const (
	sideCodeMalayalam = "ml"
	sideCodeEnglish   = "en"
)

func sideCode(side domain.Side) string {
	if side == domain.SideMalayalam {
		return sideCodeMalayalam
	}
	return sideCodeEnglish
}

func matchBoardText(b *service.MatchBoard) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🔤 %s\n\n", session.RouteMatchingWords.DisplayTitle())
	fmt.Fprintf(&sb, "Score: %d/%d\n", b.Score.Current, b.Score.Total)

	switch b.Outcome {
	case game.OutcomeMatched:
		sb.WriteString("\n✅ Match!")
	case game.OutcomeMismatched:
		sb.WriteString("\n❌ Not a pair, try again.")
	}

	switch {
	case b.Complete:
		sb.WriteString("\n\n🎉 All pairs matched!")
	case b.SelectedMalayalam != nil:
		sb.WriteString("\n\n" + pendingHint(*b.SelectedMalayalam))
	case b.SelectedEnglish != nil:
		sb.WriteString("\n\n" + pendingHint(*b.SelectedEnglish))
	default:
		sb.WriteString("\n\nPick a Malayalam word and its English meaning.")
	}
	return sb.String()
}

// pendingHint asks for the partner of a half-made pair
func pendingHint(selected domain.VocabularyItem) string {
	return fmt.Sprintf("Now pick the %s word for %s.", sideName(selected.Side.Opposite()), selected.Text)
}

func sideName(side domain.Side) string {
	if side == domain.SideMalayalam {
		return "Malayalam"
	}
	return "English"
}

func matchLabel(item domain.VocabularyItem, b *service.MatchBoard) string {
	switch {
	case b.Matched[item.ID]:
		return "✅ " + item.Text
	case isSelected(item, b.SelectedMalayalam), isSelected(item, b.SelectedEnglish):
		return "👉 " + item.Text
	default:
		return item.Text
	}
}

func isSelected(item domain.VocabularyItem, selected *domain.VocabularyItem) bool {
	return selected != nil && selected.ID == item.ID && selected.Side == item.Side
}

func matchBoardMarkup(b *service.MatchBoard) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	n := len(b.Malayalam)
	if len(b.English) > n {
		n = len(b.English)
	}
	for i := 0; i < n; i++ {
		row := tele.Row{}
		if i < len(b.Malayalam) {
			row = append(row, matchButton(markup, b, b.Malayalam[i]))
		}
		if i < len(b.English) {
			row = append(row, matchButton(markup, b, b.English[i]))
		}
		rows = append(rows, row)
	}

	rows = append(rows,
		markup.Row(
			markup.Data("🔄 Reset", btnMatchReset.Unique, b.Round),
			markup.Data("🆕 New words", btnMatching.Unique),
		),
		markup.Row(btnMainMenu),
	)
	markup.Inline(rows...)
	return markup
}

func matchButton(markup *tele.ReplyMarkup, b *service.MatchBoard, item domain.VocabularyItem) tele.Btn {
	return markup.Data(matchLabel(item, b), btnMatchPick.Unique, b.Round, sideCode(item.Side), strconv.Itoa(item.ID))
}

func flipBoardText(b *service.FlipBoard) string {
	return fmt.Sprintf("🃏 %s\n\nRevealed: %d/%d\n\nTap a card to see its meaning.",
		session.RouteFlipTest.DisplayTitle(), b.Revealed, b.Total)
}

func flipLabel(card service.FlipCard) string {
	if card.Flipped {
		return fmt.Sprintf("%s → %s", card.Entry.Malayalam, card.Entry.English)
	}
	return card.Entry.Malayalam
}

func flipBoardMarkup(b *service.FlipBoard) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(b.Cards)+2)

	for _, card := range b.Cards {
		rows = append(rows, markup.Row(
			markup.Data(flipLabel(card), btnFlipCard.Unique, b.Round, strconv.Itoa(card.Entry.ID)),
		))
	}

	rows = append(rows,
		markup.Row(
			markup.Data("🔄 Reset", btnFlipReset.Unique, b.Round),
			markup.Data("🆕 New words", btnFlip.Unique),
		),
		markup.Row(btnMainMenu),
	)
	markup.Inline(rows...)
	return markup
}
