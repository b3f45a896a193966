package engine

import "errors"

// Status is the state of the session loop.
type Status int

const (
	Running Status = iota
	Completed
	ExitedByUser
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case ExitedByUser:
		return "exited"
	default:
		return "unknown"
	}
}

// Menu operations
const (
	ExitOp   = 0
	AttackOp = 1
	VerifyOp = 2
)

var (
	ErrInvalidIndex     = errors.New("invalid territory index")
	ErrNotYourTerritory = errors.New("attacker territory is not owned by the player")
	ErrNotANumber       = errors.New("input is not a number")
	ErrReadFailed       = errors.New("cannot read input")
)
