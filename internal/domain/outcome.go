package domain

// Outcome is the result of evaluating a guess attempt
type Outcome string

const (
	OutcomeTooLow       Outcome = "too_low"
	OutcomeTooHigh      Outcome = "too_high"
	OutcomeWon          Outcome = "won"
	OutcomeInvalidInput Outcome = "invalid_input"
)
