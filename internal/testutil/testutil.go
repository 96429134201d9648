package testutil

import (
	"miumiu/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewIdleSession creates a session without an active game
func NewIdleSession() domain.Session {
	return domain.Session{State: domain.StateIdle}
}

// NewInGameSession creates a session with an active game
func NewInGameSession(secret, attempts int) domain.Session {
	return domain.Session{
		State:        domain.StateInGame,
		SecretNumber: secret,
		Attempts:     attempts,
	}
}
