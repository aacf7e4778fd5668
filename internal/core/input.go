package core

// Action is a semantic game action, abstracted from physical keys and
// mouse buttons.
type Action int

const (
	ActionNone Action = iota
	// Held actions: true for every tick the key or button stays down.
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	// Edge actions: true only for the frame the key was pressed.
	ActionPause
	ActionRestart
	ActionConfirm
	ActionBack
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the last known mouse position in screen cells.
type Pointer struct {
	X, Y    int
	Valid   bool // a position has been reported at least once
	Clicked bool // the left button was pressed during this frame
}

// InputFrame is the input snapshot the platform hands to a game: the
// actions active right now plus the pointer.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as active.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions and the click flag. The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Clicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}

// Direction returns the movement direction implied by the held move
// actions, each axis in {-1, 0, 1}. Opposite directions cancel.
func (f InputFrame) Direction() Vec2 {
	var d Vec2
	if f.Has(ActionMoveLeft) {
		d.X--
	}
	if f.Has(ActionMoveRight) {
		d.X++
	}
	if f.Has(ActionMoveUp) {
		d.Y--
	}
	if f.Has(ActionMoveDown) {
		d.Y++
	}
	return d
}
