package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jet-defender/internal/core"
)

// HoldWindow is how long a key counts as held after its last press.
// Terminals report key repeats but never key releases.
const HoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "up", "w", "k":
		return core.ActionFire, false
	case "enter":
		return core.ActionStart, false
	case "r":
		return core.ActionRestart, false
	case "p", "esc":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// HoldState turns repeated key presses into a held state.
type HoldState struct {
	until map[core.Action]time.Time
}

// NewHoldState creates an empty hold state.
func NewHoldState() *HoldState {
	return &HoldState{until: make(map[core.Action]time.Time)}
}

// Press marks a as held for HoldWindow from now. Pressing one direction
// releases the other.
func (h *HoldState) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(HoldWindow)
}

// Held reports whether a is still held at now.
func (h *HoldState) Held(a core.Action, now time.Time) bool {
	return now.Before(h.until[a])
}

// Frame returns the held actions as an input frame.
func (h *HoldState) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire} {
		if h.Held(a, now) {
			f.Set(a)
		}
	}
	return f
}

// Release forgets every held key.
func (h *HoldState) Release() {
	clear(h.until)
}
