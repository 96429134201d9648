package memory

import (
	"sync"

	"miumiu/internal/domain"
)

// SessionRepo implements repository.SessionRepository in process memory.
// Sessions are created lazily on first access and lost on restart.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[int64]domain.Session
}

// NewSessionRepo creates an empty in-memory session store
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[int64]domain.Session),
	}
}

// Get returns the stored session, or a default idle one if none exists
func (r *SessionRepo) Get(userID int64) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		return s, nil
	}
	return domain.Session{State: domain.StateIdle}, nil
}

// Update applies fn to the user's session while holding the store lock,
// so concurrent updates for the same user never interleave
func (r *SessionRepo) Update(userID int64, fn func(*domain.Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[userID]
	if !ok {
		s = domain.Session{State: domain.StateIdle}
	}

	if err := fn(&s); err != nil {
		return err
	}

	r.sessions[userID] = s
	return nil
}

// Clear removes the user's session entirely
func (r *SessionRepo) Clear(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
	return nil
}
