package handler

import (
	"strings"
	"unicode"

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

// handleStartGame handles the start-game menu button. Pressing it while a
// game is already running simply restarts the game with a fresh secret.
func (h *Handler) handleStartGame(c tele.Context) error {
	userID := c.Sender().ID

	if err := c.Respond(&tele.CallbackResponse{Text: "Oke, game dimulai!"}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	reply, err := h.games.Start(userID)
	if err != nil {
		h.logger.Error("Failed to start game",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(textInternalError)
	}

	h.logger.Info("Game started", zap.Int64("user_id", userID))
	return c.Send(reply)
}

// handleSendPhoto handles the special-photo menu button
func (h *Handler) handleSendPhoto(c tele.Context) error {
	if err := c.Respond(&tele.CallbackResponse{Text: "Tentu, ini dia fotonya!"}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	return h.sendSpecialPhoto(c)
}

// handleCallback acknowledges callbacks that match no registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	h.logger.Warn("Unknown callback",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("data", cleanCallbackData(callback.Data)),
	)
	return c.Respond()
}

// sendSpecialPhoto delivers the configured image with its caption, or one
// of the fixed apology texts when the file is missing or the send fails
func (h *Handler) sendSpecialPhoto(c tele.Context) error {
	photo, err := h.photos.SpecialPhoto()
	if err != nil {
		h.logger.Warn("Special photo unavailable", zap.Error(err))
		return c.Send(textPhotoNotFound)
	}

	if err := c.Send(&tele.Photo{File: tele.FromDisk(photo.Path), Caption: photo.Caption}); err != nil {
		h.logger.Error("Failed to send photo",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		return c.Send(textPhotoSendFailed)
	}

	h.logger.Info("Special photo sent", zap.Int64("user_id", c.Sender().ID))
	return nil
}
