package domain

import "context"

//go:generate mockgen -source=state.go -destination=state_mock.go -package=domain

// StateSnapshot is the read-once view of the key-value store for a single
// evaluation cycle. Partial updates arriving mid-cycle are never observed.
type StateSnapshot struct {
	ActiveRoutineID string
	Routines        []Routine
	Notify          NotifyConfig
	Devices         []Device
}

// ActiveRoutine resolves the routine marked active inside the snapshot.
func (s *StateSnapshot) ActiveRoutine() (*Routine, error) {
	if s.ActiveRoutineID == "" {
		return nil, ErrNoActiveRoutine
	}
	for i := range s.Routines {
		if s.Routines[i].ID == s.ActiveRoutineID {
			return &s.Routines[i], nil
		}
	}
	return nil, ErrRoutineNotFound
}

// StateRepository supplies the persisted routine state. Implementations are
// read-only from the engine's perspective.
type StateRepository interface {
	Snapshot(ctx context.Context) (*StateSnapshot, error)
}
