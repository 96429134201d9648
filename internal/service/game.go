package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"miumiu/internal/domain"
	"miumiu/internal/repository"
)

// Secret number range, inclusive on both ends
const (
	secretMin = 1
	secretMax = 100
)

// Fixed game reply texts
const (
	TextGameIntro    = "Baiklah, tuan putri! Aku sudah memilih sebuah angka rahasia antara 1 dan 100. Coba tebak!"
	TextGuessInvalid = "Itu bukan angka, cantik. Coba masukkan angka ya."
	TextGuessTooLow  = "Angkanya terlalu rendah cantikku, coba lagi!"
	TextGuessTooHigh = "Terlalu tinggi sayangg, ayo tebak lagi!"

	textGuessWonFmt = "✨ KERENN BANGETT PUTRII AKUU! YEYY Angka rahasianyaa adalahh %d. Kamu menang! ✨"
)

// GameService runs the number guessing game on top of the session store
type GameService struct {
	sessions repository.SessionRepository

	rngMux sync.Mutex
	rng    *rand.Rand
}

// NewGameService creates a new game service
func NewGameService(sessions repository.SessionRepository) *GameService {
	return &GameService{
		sessions: sessions,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// State returns the user's current dialogue state
func (s *GameService) State(userID int64) (domain.State, error) {
	session, err := s.sessions.Get(userID)
	if err != nil {
		return domain.StateIdle, err
	}
	return session.State, nil
}

// Start begins a new game, overwriting any game already in progress,
// and returns the introductory prompt text
func (s *GameService) Start(userID int64) (string, error) {
	secret := s.draw()

	err := s.sessions.Update(userID, func(session *domain.Session) error {
		session.State = domain.StateInGame
		session.SecretNumber = secret
		session.Attempts = 0
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to start game: %w", err)
	}

	return TextGameIntro, nil
}

// Guess evaluates input as a guess attempt and returns the outcome together
// with the reply text. Non-numeric input leaves the session untouched.
func (s *GameService) Guess(userID int64, input string) (domain.Outcome, string, error) {
	guess, ok := parseGuess(input)
	if !ok {
		return domain.OutcomeInvalidInput, TextGuessInvalid, nil
	}

	var (
		outcome domain.Outcome
		reply   string
	)
	err := s.sessions.Update(userID, func(session *domain.Session) error {
		switch {
		case guess < session.SecretNumber:
			session.Attempts++
			outcome, reply = domain.OutcomeTooLow, TextGuessTooLow
		case guess > session.SecretNumber:
			session.Attempts++
			outcome, reply = domain.OutcomeTooHigh, TextGuessTooHigh
		default:
			outcome = domain.OutcomeWon
			reply = fmt.Sprintf(textGuessWonFmt, session.SecretNumber)
			*session = domain.Session{State: domain.StateIdle}
		}
		return nil
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to evaluate guess: %w", err)
	}

	return outcome, reply, nil
}

func (s *GameService) draw() int {
	s.rngMux.Lock()
	defer s.rngMux.Unlock()
	return s.rng.Intn(secretMax-secretMin+1) + secretMin
}

// parseGuess accepts non-negative integer literals only: at least one rune,
// all of them ASCII digits
func parseGuess(input string) (int, bool) {
	if input == "" {
		return 0, false
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return n, true
}
