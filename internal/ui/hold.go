package ui

import "github.com/diegok/pingpong/internal/game"

// Hold turns the press-only key events of a terminal into held keys.
// A key stays held while presses (including auto-repeat) keep arriving and
// is released once none has been seen for the hold window.
type Hold struct {
	tracker  *game.InputTracker
	frames   int
	lastSeen map[game.Key]int
}

func NewHold(tracker *game.InputTracker, frames int) *Hold {
	return &Hold{
		tracker:  tracker,
		frames:   frames,
		lastSeen: make(map[game.Key]int),
	}
}

// Press records k as seen at frame and reports whether it is a new press
// rather than a repeat of a key already held.
func (h *Hold) Press(k game.Key, frame int) bool {
	h.lastSeen[k] = frame
	return h.tracker.KeyDown(k)
}

// Expire releases keys whose last press is at least the hold window old
func (h *Hold) Expire(frame int) {
	for k, seen := range h.lastSeen {
		if frame-seen >= h.frames {
			h.tracker.KeyUp(k)
			delete(h.lastSeen, k)
		}
	}
}

// Release drops every held key
func (h *Hold) Release() {
	h.tracker.Reset()
	clear(h.lastSeen)
}
