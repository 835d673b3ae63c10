package domain

import (
	"errors"
	"testing"
)

func TestAttempt_HappyPath(t *testing.T) {
	a := NewAttempt("a-1")
	for _, next := range []AttemptState{AttemptValidating, AttemptValidated, AttemptSubmitting, AttemptConfirmed} {
		if err := a.Advance(next); err != nil {
			t.Fatalf("advance to %s: %v", next, err)
		}
	}
	if !a.State.Terminal() {
		t.Errorf("confirmed must be terminal")
	}
	if len(a.History) != 5 {
		t.Errorf("expected 5 history entries, got %d", len(a.History))
	}
}

func TestAttempt_FailuresReturnToIdle(t *testing.T) {
	cases := [][]AttemptState{
		{AttemptValidating, AttemptValidationFailed, AttemptIdle},
		{AttemptValidating, AttemptValidated, AttemptSubmitting, AttemptRejected, AttemptIdle},
	}
	for _, path := range cases {
		a := NewAttempt("a")
		for _, next := range path {
			if err := a.Advance(next); err != nil {
				t.Fatalf("path %v: %v", path, err)
			}
		}
		if a.State != AttemptIdle {
			t.Errorf("path %v: expected idle, got %s", path, a.State)
		}
	}
}

func TestAttempt_InvalidTransition(t *testing.T) {
	a := NewAttempt("a")
	err := a.Advance(AttemptSubmitting)
	if !errors.Is(err, ErrInvalidAttemptTransition) {
		t.Fatalf("expected ErrInvalidAttemptTransition, got %v", err)
	}
	if a.State != AttemptIdle {
		t.Errorf("state must not change on invalid transition, got %s", a.State)
	}
}
