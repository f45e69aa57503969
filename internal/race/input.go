package race

import "strings"

// Key names follow the browser KeyboardEvent.key values, lower-cased.
const (
	KeyArrowUp    = "arrowup"
	KeyArrowDown  = "arrowdown"
	KeyArrowLeft  = "arrowleft"
	KeyArrowRight = "arrowright"
	KeyW          = "w"
	KeyA          = "a"
	KeyS          = "s"
	KeyD          = "d"
	KeyReset      = "r"
)

// Input holds which keys are currently held down. Key events write to it as they
// arrive; the simulation only reads it through Snapshot.
type Input struct {
	held map[string]bool
}

func NewInput() *Input {
	return &Input{held: make(map[string]bool)}
}

// SetKey records the held state for name. Any name is accepted.
func (in *Input) SetKey(name string, pressed bool) {
	in.held[strings.ToLower(name)] = pressed
}

// IsHeld reports whether name is held. Unknown keys are not held.
func (in *Input) IsHeld(name string) bool {
	return in.held[strings.ToLower(name)]
}

// Clear releases every key, e.g. when the window loses focus.
func (in *Input) Clear() {
	for k := range in.held {
		delete(in.held, k)
	}
}

// Controls is the per-frame view of the driving keys.
type Controls struct {
	Forward bool
	Reverse bool
	Left    bool
	Right   bool
}

// Snapshot resolves the held keys into driving controls for one step.
func (in *Input) Snapshot() Controls {
	return Controls{
		Forward: in.held[KeyArrowUp] || in.held[KeyW],
		Reverse: in.held[KeyArrowDown] || in.held[KeyS],
		Left:    in.held[KeyArrowLeft] || in.held[KeyA],
		Right:   in.held[KeyArrowRight] || in.held[KeyD],
	}
}
