package game

// Key is a lowercase key identifier as reported by the host
type Key string

// Keys the game reacts to. Any other key is tracked but never queried.
const (
	KeyW         Key = "w"
	KeyS         Key = "s"
	KeyArrowUp   Key = "arrowup"
	KeyArrowDown Key = "arrowdown"
	KeyToggle    Key = " "
)

// Controls binds a paddle to its movement keys
type Controls struct {
	Up   Key
	Down Key
}

var (
	Player1Controls = Controls{Up: KeyW, Down: KeyS}
	Player2Controls = Controls{Up: KeyArrowUp, Down: KeyArrowDown}
)

// InputTracker keeps the set of keys currently held down
type InputTracker struct {
	held map[Key]struct{}
}

func NewInputTracker() *InputTracker {
	return &InputTracker{held: make(map[Key]struct{})}
}

// KeyDown marks k as held. It returns true only when k was not already held,
// so auto-repeated presses are not reported as new presses.
func (t *InputTracker) KeyDown(k Key) bool {
	if _, ok := t.held[k]; ok {
		return false
	}
	t.held[k] = struct{}{}
	return true
}

// KeyUp releases k. Releasing a key that is not held is a no-op.
func (t *InputTracker) KeyUp(k Key) {
	delete(t.held, k)
}

func (t *InputTracker) IsHeld(k Key) bool {
	_, ok := t.held[k]
	return ok
}

// Reset releases every key
func (t *InputTracker) Reset() {
	clear(t.held)
}
