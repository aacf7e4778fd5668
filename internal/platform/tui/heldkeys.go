package tui

import (
	"time"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// HeldKeys approximates key-up events, which terminals don't report.
// A key counts as held for a fixed window after its first press, and for
// a shorter window after each auto-repeat press after that. The first
// window covers the delay before the terminal starts repeating.
type HeldKeys struct {
	hold   time.Duration
	repeat time.Duration

	keys      map[core.Action]heldKey
	mouseFire bool
}

type heldKey struct {
	first, last time.Time
}

var opposites = map[core.Action]core.Action{
	core.ActionMoveUp:    core.ActionMoveDown,
	core.ActionMoveDown:  core.ActionMoveUp,
	core.ActionMoveLeft:  core.ActionMoveRight,
	core.ActionMoveRight: core.ActionMoveLeft,
}

// NewHeldKeys creates a tracker with the given windows in milliseconds.
func NewHeldKeys(holdMs, repeatMs float64) *HeldKeys {
	return &HeldKeys{
		hold:   time.Duration(holdMs * float64(time.Millisecond)),
		repeat: time.Duration(repeatMs * float64(time.Millisecond)),
		keys:   make(map[core.Action]heldKey),
	}
}

// Press records a key press at now. A press while the key is still held
// is an auto-repeat. Pressing a direction releases its opposite.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if opp, ok := opposites[a]; ok {
		delete(h.keys, opp)
	}
	if k, ok := h.keys[a]; ok && h.active(k, now) {
		k.last = now
		h.keys[a] = k
		return
	}
	h.keys[a] = heldKey{first: now, last: now}
}

// Release drops a key immediately.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.keys, a)
}

// SetMouseFire sets the state of the mouse trigger, which has real
// press and release events.
func (h *HeldKeys) SetMouseFire(down bool) {
	h.mouseFire = down
}

func (h *HeldKeys) active(k heldKey, now time.Time) bool {
	return now.Sub(k.first) < h.hold || now.Sub(k.last) < h.repeat
}

// Held reports whether a is held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	if a == core.ActionFire && h.mouseFire {
		return true
	}
	k, ok := h.keys[a]
	return ok && h.active(k, now)
}

// Apply sets every held action on frame and forgets expired keys.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, k := range h.keys {
		if !h.active(k, now) {
			delete(h.keys, a)
			continue
		}
		frame.Set(a)
	}
	if h.mouseFire {
		frame.Set(core.ActionFire)
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.keys)
	h.mouseFire = false
}
