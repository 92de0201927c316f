package window

//go:generate go tool stringer -type=State -trimprefix=State

// State is the lifecycle state of a Window. A window moves from
// StateUninitialized to StateOpen once, and from StateOpen to StateClosed once.
type State uint8

const (
	StateUninitialized State = iota
	StateOpen
	StateClosed
)
