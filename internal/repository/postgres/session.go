package postgres

import (
	"database/sql"
	"fmt"

	"miumiu/internal/domain"
)

// SessionRepo implements repository.SessionRepository on PostgreSQL
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Get returns the stored session, or a default idle one if none exists
func (r *SessionRepo) Get(userID int64) (domain.Session, error) {
	var s domain.Session
	query := `SELECT state, secret_number, attempts FROM sessions WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&s.State, &s.SecretNumber, &s.Attempts)

	if err == sql.ErrNoRows {
		return domain.Session{State: domain.StateIdle}, nil
	}
	if err != nil {
		return domain.Session{}, err
	}

	return s, nil
}

// Update applies fn inside a transaction that holds a row lock for the
// user, so concurrent updates for the same user id are serialized by the
// database. A missing row is treated as a fresh idle session.
func (r *SessionRepo) Update(userID int64, fn func(*domain.Session) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin session update: %w", err)
	}
	defer tx.Rollback()

	s := domain.Session{State: domain.StateIdle}
	query := `SELECT state, secret_number, attempts FROM sessions WHERE user_id = $1 FOR UPDATE`
	err = tx.QueryRow(query, userID).Scan(&s.State, &s.SecretNumber, &s.Attempts)
	if err != nil && err != sql.ErrNoRows {
		return err
	}

	if err := fn(&s); err != nil {
		return err
	}

	upsert := `
		INSERT INTO sessions (user_id, state, secret_number, attempts, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id)
		DO UPDATE SET state = $2, secret_number = $3, attempts = $4, updated_at = now()
	`
	if _, err := tx.Exec(upsert, userID, s.State, s.SecretNumber, s.Attempts); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return tx.Commit()
}

// Clear removes the user's session row
func (r *SessionRepo) Clear(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}
