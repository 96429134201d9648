package handler

import (
	"context"
	"strings"

	"miumiu/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	textGreeting  = "Hai juga! 👋"
	triggerPhrase = "wanita tercantik di cianjur"
)

// textAction is what the router decided to do with a plain text message
type textAction int

const (
	actGuess textAction = iota
	actGreet
	actPhoto
	actAI
)

// routeText picks the handler for a plain text message. While a game is
// active every message is a guess attempt; the greeting and photo triggers
// only fire when idle.
func routeText(state domain.State, text string) textAction {
	if state == domain.StateInGame {
		return actGuess
	}

	lowered := strings.ToLower(text)
	if lowered == "hai" {
		return actGreet
	}
	if strings.Contains(lowered, triggerPhrase) {
		return actPhoto
	}
	return actAI
}

// handleText handles all text messages based on the user's session state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	state, err := h.games.State(userID)
	if err != nil {
		h.logger.Error("Failed to load session state",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(textInternalError)
	}

	switch routeText(state, text) {
	case actGuess:
		outcome, reply, err := h.games.Guess(userID, text)
		if err != nil {
			h.logger.Error("Failed to evaluate guess",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			return c.Send(textInternalError)
		}

		h.logger.Info("Guess evaluated",
			zap.Int64("user_id", userID),
			zap.String("outcome", string(outcome)),
		)
		return c.Send(reply)

	case actGreet:
		return c.Send(textGreeting)

	case actPhoto:
		return h.sendSpecialPhoto(c)

	default:
		// Show the typing indicator while the completion is in flight
		_ = c.Notify(tele.Typing)

		reply := <-h.ai.ReplyAsync(context.Background(), text)
		return c.Send(reply)
	}
}
