package game

import (
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"racer/internal/race"
)

// Action keys handled on press rather than held.
const (
	KeyNameSpace  = "space"
	KeyNameEnter  = "enter"
	KeyNameEscape = "escape"
)

// Input turns glfw key callbacks into held-key state for the simulation and
// press notifications for one-shot actions.
type Input struct {
	Keys *race.Input

	// OnPress is called once per physical key press (auto-repeat ignored).
	OnPress func(name string)
}

func NewInput() *Input {
	return &Input{Keys: race.NewInput()}
}

// Attach installs the key and focus callbacks on window.
func (in *Input) Attach(window *glfw.Window) {
	window.SetKeyCallback(in.onKey)
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			// Key-up events are lost while unfocused.
			in.Keys.Clear()
		}
	})
}

func (in *Input) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
	name := keyName(key, scancode)
	if name == "" {
		return
	}
	switch action {
	case glfw.Press:
		in.Keys.SetKey(name, true)
		if in.OnPress != nil {
			in.OnPress(name)
		}
	case glfw.Release:
		in.Keys.SetKey(name, false)
	}
}

var namedKeys = map[glfw.Key]string{
	glfw.KeyUp:         race.KeyArrowUp,
	glfw.KeyDown:       race.KeyArrowDown,
	glfw.KeyLeft:       race.KeyArrowLeft,
	glfw.KeyRight:      race.KeyArrowRight,
	glfw.KeySpace:      KeyNameSpace,
	glfw.KeyEnter:      KeyNameEnter,
	glfw.KeyKPEnter:    KeyNameEnter,
	glfw.KeyEscape:     KeyNameEscape,
	glfw.KeyLeftShift:  "shift",
	glfw.KeyRightShift: "shift",
}

// keyName maps a glfw key to the lower-case name used by race.Input. Printable
// keys use the layout-aware name so WASD follows the keyboard layout.
func keyName(key glfw.Key, scancode int) string {
	if name, ok := namedKeys[key]; ok {
		return name
	}
	return strings.ToLower(glfw.GetKeyName(key, scancode))
}
