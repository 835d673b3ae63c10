package domain

import (
	"errors"
	"fmt"
)

// AttemptState is the lifecycle state of a single booking attempt.
type AttemptState string

const (
	AttemptIdle             AttemptState = "idle"
	AttemptValidating       AttemptState = "validating"
	AttemptValidationFailed AttemptState = "validation_failed"
	AttemptValidated        AttemptState = "validated"
	AttemptSubmitting       AttemptState = "submitting"
	AttemptRejected         AttemptState = "rejected"
	AttemptConfirmed        AttemptState = "confirmed"
)

// attemptTransitions defines the allowed moves of the booking attempt machine.
var attemptTransitions = map[AttemptState][]AttemptState{
	AttemptIdle:             {AttemptValidating},
	AttemptValidating:       {AttemptValidationFailed, AttemptValidated},
	AttemptValidationFailed: {AttemptIdle},
	AttemptValidated:        {AttemptSubmitting},
	AttemptSubmitting:       {AttemptRejected, AttemptConfirmed},
	AttemptRejected:         {AttemptIdle},
}

var ErrInvalidAttemptTransition = errors.New("invalid booking attempt transition")

// CanTransitionTo reports whether a move from s to next is allowed.
func (s AttemptState) CanTransitionTo(next AttemptState) bool {
	for _, allowed := range attemptTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further moves are possible from s.
func (s AttemptState) Terminal() bool {
	return len(attemptTransitions[s]) == 0
}

// Attempt tracks one user action through the booking workflow.
type Attempt struct {
	ID      string
	State   AttemptState
	History []AttemptState
}

// NewAttempt returns an attempt in the idle state.
func NewAttempt(id string) *Attempt {
	return &Attempt{ID: id, State: AttemptIdle, History: []AttemptState{AttemptIdle}}
}

// Advance moves the attempt to next or reports why it cannot.
func (a *Attempt) Advance(next AttemptState) error {
	if !a.State.CanTransitionTo(next) {
		return fmt.Errorf("%w (from %s to %s)", ErrInvalidAttemptTransition, a.State, next)
	}
	a.State = next
	a.History = append(a.History, next)
	return nil
}
