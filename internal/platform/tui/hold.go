package tui

import "github.com/vovakirdan/temple-run/internal/core"

// Hold windows in display ticks. The first window bridges the terminal's
// auto-repeat delay, later repeats only need to cover the repeat interval.
const (
	defaultHoldFirst  = 30
	defaultHoldRepeat = 6
)

// HoldTracker turns key presses into held directions.
// Terminals report presses and auto-repeats but never releases, so a
// direction stays held for a window after its latest press.
type HoldTracker struct {
	first  uint64
	repeat uint64
	until  map[core.Action]uint64
}

// NewHoldTracker creates a tracker with the given windows in ticks.
func NewHoldTracker(first, repeat int) *HoldTracker {
	return &HoldTracker{
		first:  uint64(core.Max(first, 1)),
		repeat: uint64(core.Max(repeat, 1)),
		until:  make(map[core.Action]uint64),
	}
}

// Press records a press of a held action at tick.
// Pressing one direction releases the opposite one.
func (h *HoldTracker) Press(a core.Action, tick uint64) {
	window := h.first
	if h.Held(a, tick) {
		window = h.repeat
	}
	if end := tick + window; end > h.until[a] {
		h.until[a] = end
	}

	if o := opposite(a); o != core.ActionNone {
		delete(h.until, o)
	}
}

// Held reports whether the action is held at tick.
func (h *HoldTracker) Held(a core.Action, tick uint64) bool {
	return h.until[a] > tick
}

// Apply sets every action still held at tick on the frame and forgets
// expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, tick uint64) {
	for a, end := range h.until {
		if end > tick {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	for a := range h.until {
		delete(h.until, a)
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}
