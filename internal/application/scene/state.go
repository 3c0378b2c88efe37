package scene

import (
	"errors"
	"fmt"
)

// State represents the scene manager's lifecycle state
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateActive
	StatePaused
	StateUnloading
)

// String returns the string representation of the scene state
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "Unloaded"
	case StateLoading:
		return "Loading"
	case StateActive:
		return "Active"
	case StatePaused:
		return "Paused"
	case StateUnloading:
		return "Unloading"
	default:
		return "Unknown"
	}
}

// ErrInvalidTransition is wrapped by errors returned for state changes
// not present in the transition table.
var ErrInvalidTransition = errors.New("invalid scene state transition")

// transitions is the allowed destination set per source state.
var transitions = map[State][]State{
	StateUnloaded:  {StateLoading},
	StateLoading:   {StateActive, StateUnloaded},
	StateActive:    {StateUnloading, StateLoading, StatePaused},
	StatePaused:    {StateActive},
	StateUnloading: {StateUnloaded, StateActive, StateLoading},
}

// CanTransition reports whether the transition table allows from -> to.
// Same-state transitions are not in the table; callers treat them as
// duplicate sets, not transitions.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func invalidTransitionError(from, to State) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
