package trajectory

import (
	"fmt"

	"github.com/nvershinin/escat/internal/electron"
)

// ErrorKind distinguishes the three error kinds of spec.md §7.
type ErrorKind int

const (
	// InvalidInput: shape mismatch, non-positive cell_dim, empty
	// material table, EMin >= E0, or an out-of-bounds beam entry.
	InvalidInput ErrorKind = iota
	// PhysicsInvariantBroken: NaN out of angle sampling/direction
	// update, or energy going negative.
	PhysicsInvariantBroken
	// GridConsistencyError: a solid voxel's grid label has no matching
	// material mark.
	GridConsistencyError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case PhysicsInvariantBroken:
		return "PhysicsInvariantBroken"
	case GridConsistencyError:
		return "GridConsistencyError"
	default:
		return "UnknownError"
	}
}

// Error carries the offending electron index and its last valid state
// alongside the error kind, per spec.md §7 ("all errors carry the
// offending electron index and the last valid state"). InvalidInput
// errors carry a zero LastState, and those raised by Simulate's input
// validation carry ElectronIndex -1. All errors abort the entire
// Simulate call; partial trajectories are not returned.
type Error struct {
	Kind          ErrorKind
	ElectronIndex int
	LastState     electron.State
	Message       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at electron %d (energy=%.6f keV, point=%v): %s",
		e.Kind, e.ElectronIndex, e.LastState.Energy, e.LastState.Point, e.Message)
}

func newInvalidInput(electronIndex int, msg string, args ...any) *Error {
	return &Error{Kind: InvalidInput, ElectronIndex: electronIndex, Message: fmt.Sprintf(msg, args...)}
}

func newPhysicsInvariantBroken(electronIndex int, state electron.State, msg string, args ...any) *Error {
	return &Error{Kind: PhysicsInvariantBroken, ElectronIndex: electronIndex, LastState: state, Message: fmt.Sprintf(msg, args...)}
}

func newGridConsistencyError(electronIndex int, state electron.State, msg string, args ...any) *Error {
	return &Error{Kind: GridConsistencyError, ElectronIndex: electronIndex, LastState: state, Message: fmt.Sprintf(msg, args...)}
}
