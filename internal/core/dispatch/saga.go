// Package dispatch holds the state machine that guards one notification attempt.
//
// A Saga moves Pending -> Sending when the record's status is optimistically flipped to
// SENT, then either Sending -> Sent once the provider confirmed, or Sending -> Compensated
// after the status write has been undone.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State is the position of a Saga in its lifecycle.
type State int

const (
	StatePending State = iota
	StateSending
	StateSent
	StateCompensated
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSending:
		return "sending"
	case StateSent:
		return "sent"
	case StateCompensated:
		return "compensated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrInvalidState is returned when a step is called out of order.
var ErrInvalidState = errors.New("dispatch: invalid saga state")

// Step is one side effect of the saga, usually a conditional status write.
type Step func(ctx context.Context) error

// Saga coordinates the forward status write and its compensation. It is safe for
// concurrent use but a single Saga covers exactly one attempt.
type Saga struct {
	mu      sync.Mutex
	state   State
	forward Step
	revert  Step
}

// NewSaga returns a saga in StatePending. forward marks the record as sent, revert puts it back.
func NewSaga(forward, revert Step) *Saga {
	return &Saga{state: StatePending, forward: forward, revert: revert}
}

// State returns the current state.
func (s *Saga) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// InFlight reports whether the forward write is done and the outcome is still unknown.
func (s *Saga) InFlight() bool {
	return s.State() == StateSending
}

// Begin runs the forward step. On error the saga stays pending and nothing needs undoing.
func (s *Saga) Begin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePending {
		return fmt.Errorf("%w: begin from %s", ErrInvalidState, s.state)
	}
	if err := s.forward(ctx); err != nil {
		return err
	}
	s.state = StateSending
	return nil
}

// Confirm records that the provider accepted the message.
func (s *Saga) Confirm() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSending {
		return fmt.Errorf("%w: confirm from %s", ErrInvalidState, s.state)
	}
	s.state = StateSent
	return nil
}

// Compensate undoes the forward step after a failed send. If the revert itself fails the
// saga stays in StateSending so the caller can report the record as stuck.
func (s *Saga) Compensate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSending {
		return fmt.Errorf("%w: compensate from %s", ErrInvalidState, s.state)
	}
	if err := s.revert(ctx); err != nil {
		return err
	}
	s.state = StateCompensated
	return nil
}
