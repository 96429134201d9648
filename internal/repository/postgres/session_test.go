package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"miumiu/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepo_Get(t *testing.T) {
	tests := []struct {
		name            string
		userID          int64
		mockRows        *sqlmock.Rows
		mockError       error
		expectedSession domain.Session
		expectedError   bool
	}{
		{
			name:   "session found",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"state", "secret_number", "attempts"}).
				AddRow("in_game", 42, 3),
			expectedSession: domain.Session{State: domain.StateInGame, SecretNumber: 42, Attempts: 3},
		},
		{
			name:            "session not exists",
			userID:          456,
			mockError:       sql.ErrNoRows,
			expectedSession: domain.Session{State: domain.StateIdle},
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSessionRepo(db)

			query := "SELECT state, secret_number, attempts FROM sessions WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			s, err := repo.Get(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSession, s)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepo_Update_ExistingSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)
	userID := int64(123)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT state, secret_number, attempts FROM sessions WHERE user_id = \\$1 FOR UPDATE").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"state", "secret_number", "attempts"}).
			AddRow("in_game", 42, 1))
	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(userID, "in_game", 42, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Update(userID, func(s *domain.Session) error {
		assert.Equal(t, domain.StateInGame, s.State)
		assert.Equal(t, 42, s.SecretNumber)
		s.Attempts++
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Update_MissingSessionStartsIdle(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)
	userID := int64(456)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT state, secret_number, attempts FROM sessions WHERE user_id = \\$1 FOR UPDATE").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(userID, "in_game", 7, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = repo.Update(userID, func(s *domain.Session) error {
		assert.Equal(t, domain.StateIdle, s.State)
		s.State = domain.StateInGame
		s.SecretNumber = 7
		s.Attempts = 0
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Update_FnErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)
	userID := int64(123)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT state, secret_number, attempts FROM sessions WHERE user_id = \\$1 FOR UPDATE").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"state", "secret_number", "attempts"}).
			AddRow("idle", 0, 0))
	mock.ExpectRollback()

	err = repo.Update(userID, func(s *domain.Session) error {
		return fmt.Errorf("rejected")
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Clear(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)
	userID := int64(123)

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Clear(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
