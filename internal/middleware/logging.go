package middleware

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that records every inbound update and any
// handler failure
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			var fields []zap.Field
			if sender := c.Sender(); sender != nil {
				fields = append(fields,
					zap.Int64("user_id", sender.ID),
					zap.String("username", sender.Username),
				)
			}
			if callback := c.Callback(); callback != nil {
				fields = append(fields,
					zap.String("kind", "callback"),
					zap.String("data", cleanPayload(callback.Data)),
				)
			} else {
				fields = append(fields,
					zap.String("kind", "message"),
					zap.String("text", cleanPayload(c.Text())),
				)
			}

			logger.Info("Update received", fields...)

			err := next(c)
			if err != nil {
				logger.Error("Handler failed", append(fields, zap.Error(err))...)
			}
			return err
		}
	}
}

// cleanPayload strips non-printable runes so payloads are safe to log
func cleanPayload(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(s))
}
