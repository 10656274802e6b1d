package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/sanverite/locale-shim/internal/env"
	"github.com/sanverite/locale-shim/internal/probe"
)

// ErrAlreadyNegotiated is returned when Run is invoked more than once on the
// same Negotiator. Negotiation happens exactly once per process start.
var ErrAlreadyNegotiated = errors.New("locale negotiation already ran")

// Negotiator applies the coercion policy: decide whether coercion is legal
// for the inherited environment, and if so, commit the first available UTF-8
// candidate as the process-wide character-classification locale.
type Negotiator struct {
	activator  probe.Activator
	candidates []string

	mu  sync.Mutex
	ran bool
}

// NewNegotiator constructs a negotiator backed by the given activator and
// the fixed candidate list.
func NewNegotiator(a probe.Activator) *Negotiator {
	if a == nil {
		panic("core.NewNegotiator: activator is nil")
	}
	return &Negotiator{
		activator:  a,
		candidates: probe.Candidates(),
	}
}

// Run performs the negotiation against the captured environment view and
// returns the resulting immutable State. It never fails into an unusable
// configuration: every returned State is terminal and fully specified, and
// the error (commit failure only) is advisory.
//
// Decision order:
//
//  1. Opt-out switch set to the literal "0" -> disabled; the inherited
//     environment passes through untouched.
//  2. Governing value unset, empty, "C" or "POSIX" (exact match, no case
//     folding) -> attempt coercion.
//  3. Any other governing value is a real locale -> skipped.
//
// In the attempting phase candidates are probed in list order; the first
// success is committed (LC_CTYPE only) and the machine ends coerced.
// Exhaustion ends unavailable, leaving the degenerate locale in effect —
// a degraded outcome, not an error.
func (n *Negotiator) Run(ctx context.Context, view env.View) (*State, error) {
	n.mu.Lock()
	if n.ran {
		n.mu.Unlock()
		return nil, ErrAlreadyNegotiated
	}
	n.ran = true
	n.mu.Unlock()

	s := NewState()
	s.environ = view
	s.governing, s.governingVar, s.governingSet = view.Governing()
	if s.governingSet {
		s.effective = s.governing
	}
	if err := s.advance(PhaseGoverningRead); err != nil {
		return s, err
	}

	if view.CoercionDisabled() {
		return s, s.advance(PhaseDisabled)
	}
	if !DegenerateGoverning(s.governing, s.governingSet) {
		return s, s.advance(PhaseSkipped)
	}

	if err := s.advance(PhaseAttempting); err != nil {
		return s, err
	}
	target, found := lo.Find(n.candidates, func(name string) bool {
		return n.activator.Probe(ctx, name)
	})
	if !found {
		return s, s.advance(PhaseUnavailable)
	}
	if err := n.activator.Commit(target); err != nil {
		// Probe said yes but the commit failed; fall back to the
		// degenerate locale rather than half-apply anything.
		if terr := s.advance(PhaseUnavailable); terr != nil {
			return s, terr
		}
		return s, fmt.Errorf("commit coerced locale %q: %w", target, err)
	}

	s.mu.Lock()
	s.coercedTo = target
	s.effective = target
	s.mu.Unlock()
	return s, s.advance(PhaseCoerced)
}

// DegenerateGoverning reports whether the governing value identifies the
// ASCII-only C/POSIX default. Matching is exact against the four forms
// {unset, "", "C", "POSIX"}; "c", "posix" or "C " are real (if dubious)
// locale names and are passed through.
func DegenerateGoverning(value string, set bool) bool {
	if !set {
		return true
	}
	switch value {
	case "", "C", "POSIX":
		return true
	default:
		return false
	}
}
