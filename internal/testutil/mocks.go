package testutil

import (
	"context"

	"miumiu/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(userID int64) (domain.Session, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Update(userID int64, fn func(*domain.Session) error) error {
	args := m.Called(userID, fn)
	return args.Error(0)
}

func (m *MockSessionRepository) Clear(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockCompleter is a mock for service.Completer
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt, temperature)
	return args.String(0), args.Error(1)
}
