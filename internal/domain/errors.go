package domain

import "errors"

var (
	// ErrNoActiveRoutine and ErrRoutineNotFound are expected empty states:
	// the cycle short-circuits to a no-op and reports success with a message.
	ErrNoActiveRoutine = errors.New("no active routine")
	ErrRoutineNotFound = errors.New("active routine not found")
)
