// Package recurrence turns a reminder's schedule fields into its due state and
// its upcoming occurrences. All functions are pure: the observation instant is
// always passed in by the caller.
package recurrence

import (
	"fmt"
	"time"

	e "petminder/internal/core/domain/errors"
)

var (
	ErrFireAtRequired  = fmt.Errorf("%w: fire time must be set", e.ErrInvalidSchedule)
	ErrPatternRequired = fmt.Errorf("%w: recurring reminder must have a recurrence pattern", e.ErrInvalidSchedule)
	ErrUnknownPattern  = fmt.Errorf("%w: unknown recurrence pattern", e.ErrInvalidSchedule)
)

type State struct {
	v string
}

func (s State) String() string {
	return s.v
}

var (
	StateScheduled = State{v: "scheduled"}
	StateDue       = State{v: "due"}
	StateCompleted = State{v: "completed"}
)

func StateOf(fireAt time.Time, isCompleted bool, now time.Time) State {
	switch {
	case isCompleted:
		return StateCompleted
	case ComputeIsDue(fireAt, isCompleted, now):
		return StateDue
	default:
		return StateScheduled
	}
}

func ComputeIsDue(fireAt time.Time, isCompleted bool, now time.Time) bool {
	return !fireAt.After(now) && !isCompleted
}

// ComputeNextOccurrences returns horizonCount occurrences following fireAt.
// Each one is derived from fireAt itself, so a reminder anchored on the 31st
// comes back to the 31st after passing through shorter months.
func ComputeNextOccurrences(
	fireAt time.Time,
	isRecurring bool,
	pattern string,
	horizonCount int,
) ([]time.Time, error) {
	if !isRecurring || horizonCount <= 0 {
		return []time.Time{}, nil
	}
	p, err := ParsePattern(pattern)
	if err != nil {
		return nil, err
	}

	occurrences := make([]time.Time, 0, horizonCount)
	for n := 1; n <= horizonCount; n++ {
		occurrences = append(occurrences, p.Advance(fireAt, n))
	}
	return occurrences, nil
}

// ValidateSchedule checks a schedule before it is persisted. A pattern on a
// non-recurring schedule is accepted and has no effect.
func ValidateSchedule(fireAt time.Time, isRecurring bool, pattern string) error {
	if fireAt.IsZero() {
		return ErrFireAtRequired
	}
	if !isRecurring {
		return nil
	}
	_, err := ParsePattern(pattern)
	return err
}
