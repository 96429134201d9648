package repository

import (
	"miumiu/internal/domain"
)

// SessionRepository defines per-user session state operations.
// Update must apply fn atomically with respect to other updates for the
// same user id; if fn returns an error the stored session stays unchanged.
type SessionRepository interface {
	Get(userID int64) (domain.Session, error)
	Update(userID int64, fn func(*domain.Session) error) error
	Clear(userID int64) error
}
