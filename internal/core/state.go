package core

import (
	"errors"
	"sync"

	"github.com/sanverite/locale-shim/internal/env"
)

// Phase tracks the progress of the startup locale negotiation. The machine
// is intentionally small; the intended transitions:
//
// start          -> governing-read
// governing-read -> disabled | skipped | attempting
// attempting     -> coerced | unavailable
//
// disabled, skipped, coerced and unavailable are terminal. Transitions
// outside this set are rejected.
type Phase string

const (
	PhaseStart         Phase = "start"
	PhaseGoverningRead Phase = "governing-read"
	PhaseDisabled      Phase = "disabled"
	PhaseSkipped       Phase = "skipped"
	PhaseAttempting    Phase = "attempting"
	PhaseCoerced       Phase = "coerced"
	PhaseUnavailable   Phase = "unavailable"
)

// Terminal reports whether p is a final negotiation outcome.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseDisabled, PhaseSkipped, PhaseCoerced, PhaseUnavailable:
		return true
	default:
		return false
	}
}

// ErrInvalidTransition is returned when a phase transition outside the
// allowed set is attempted.
var ErrInvalidTransition = errors.New("invalid negotiation phase transition")

// State owns the process-wide locale configuration decided at startup.
// It is written exactly once, by a Negotiator running before any text I/O
// is configured, and is read-only for the remainder of the process. Reads
// go through GetSnapshot.
type State struct {
	mu           sync.RWMutex
	phase        Phase
	environ      env.View
	governing    string
	governingVar string
	governingSet bool
	effective    string
	coercedTo    string
}

// NewState constructs a state at the start phase with no locale decided.
func NewState() *State {
	return &State{phase: PhaseStart}
}

// Snapshot is a read model of the final negotiation outcome. Value type;
// safe to retain without locking.
type Snapshot struct {
	Phase Phase

	// Environ is the environment view the negotiation ran against.
	Environ env.View

	// GoverningValue/GoverningVar identify the governing locale setting
	// per POSIX precedence. GoverningSet is false when all three locale
	// variables were unset or empty.
	GoverningValue string
	GoverningVar   string
	GoverningSet   bool

	// EffectiveLocale is the character-classification locale in effect
	// after negotiation. Empty means the system default (the C locale).
	EffectiveLocale string

	// CoercedTo names the committed candidate when Phase is coerced.
	CoercedTo string
}

// GetSnapshot returns a copy of the current state safe for concurrent reads.
func (s *State) GetSnapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Phase:           s.phase,
		Environ:         s.environ,
		GoverningValue:  s.governing,
		GoverningVar:    s.governingVar,
		GoverningSet:    s.governingSet,
		EffectiveLocale: s.effective,
		CoercedTo:       s.coercedTo,
	}
}

// advance moves the machine to next, enforcing the allowed transitions.
func (s *State) advance(next Phase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !allowedTransition(s.phase, next) {
		return ErrInvalidTransition
	}
	s.phase = next
	return nil
}

func allowedTransition(cur, next Phase) bool {
	switch cur {
	case PhaseStart:
		return next == PhaseGoverningRead
	case PhaseGoverningRead:
		return next == PhaseDisabled || next == PhaseSkipped || next == PhaseAttempting
	case PhaseAttempting:
		return next == PhaseCoerced || next == PhaseUnavailable
	default:
		// Terminal phases have no outgoing edges.
		return false
	}
}
