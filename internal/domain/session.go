package domain

// State represents user's current dialogue state
type State string

const (
	// StateIdle means free text is forwarded to the AI assistant
	StateIdle State = "idle"
	// StateInGame means free text is treated as a guess attempt
	StateInGame State = "in_game"
)

// Session holds per-user conversation state
type Session struct {
	State        State
	SecretNumber int
	Attempts     int
}

// Valid reports whether the secret number presence matches the state.
// The secret is drawn from [1,100], so zero means absent.
func (s Session) Valid() bool {
	if s.State == StateInGame {
		return s.SecretNumber != 0
	}
	return s.SecretNumber == 0
}
