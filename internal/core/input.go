package core

// Action represents a semantic game action, abstracted from physical key presses.
// The runner consumes only these intents; mapping keys to them is the platform's job.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // held: run left
	ActionRight          // held: run right
	ActionJump           // Space, W, Up - jump / double jump
	ActionConfirm        // Enter - start from menu, acknowledge game over
	ActionPause          // P, Escape - pause/unpause while playing
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
// Held actions (Left, Right) are present on every tick the key is held;
// trigger actions (Jump, Confirm, Pause) are present on the tick they fired.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Input builds a frame with the given actions set.
func Input(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Direction returns -1 for left, +1 for right and 0 for neither.
// Left wins when both are held.
func (f InputFrame) Direction() int {
	switch {
	case f.Has(ActionLeft):
		return -1
	case f.Has(ActionRight):
		return 1
	default:
		return 0
	}
}
