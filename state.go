package signpad

// State is the interaction state of a Pad.
type State int

// Pad states.
const (
	// Idle means no ink is on the surface.
	Idle State = iota

	// Drawing means a stroke is in progress.
	Drawing

	// IdleWithInk means at least one stroke is complete and none is in progress.
	IdleWithInk

	// Exported means the ink was confirmed and handed to the confirm callback.
	// The ink stays on the surface; new strokes and confirms are accepted.
	Exported
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Drawing:
		return "Drawing"
	case IdleWithInk:
		return "IdleWithInk"
	case Exported:
		return "Exported"
	default:
		return "Unknown"
	}
}

// HasInk reports whether the state implies a non-empty surface.
func (s State) HasInk() bool {
	return s != Idle
}
