package core

// Action represents a semantic game action, abstracted from physical key
// presses. Multiple physical keys (e.g. W and ArrowUp) map to a single
// action; the action is boolean, never counted.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - primary action (launch, shoot, flap, hard drop)
	ActionAlt            // Shift/X - secondary action (hold, hyperspace)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionStart          // Enter/Space on the idle screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionAlt:
		return "Alt"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for a single simulation tick with edge
// detection against the previous tick. The platform merges all physical
// sources into the current set exactly once per tick, then calls Shift
// before filling the next tick's set.
type InputFrame struct {
	current map[Action]bool
	prev    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		current: make(map[Action]bool),
		prev:    make(map[Action]bool),
	}
}

// Set marks an action as active for the current tick.
func (f *InputFrame) Set(a Action) {
	if f.current == nil {
		f.current = make(map[Action]bool)
	}
	f.current[a] = true
}

// Pressed returns true if the action is active this tick.
func (f InputFrame) Pressed(a Action) bool {
	return f.current[a]
}

// JustPressed returns true if the action became active this tick.
func (f InputFrame) JustPressed(a Action) bool {
	return f.current[a] && !f.prev[a]
}

// JustReleased returns true if the action stopped being active this tick.
func (f InputFrame) JustReleased(a Action) bool {
	return !f.current[a] && f.prev[a]
}

// Has is an alias for Pressed, kept for brevity at game call sites.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed(a)
}

// Direction derives a movement vector from the directional actions.
// Each component is in {-1, 0, 1}; opposing actions cancel to 0.
func (f InputFrame) Direction() Vec {
	var v Vec
	if f.current[ActionLeft] {
		v.X--
	}
	if f.current[ActionRight] {
		v.X++
	}
	if f.current[ActionUp] {
		v.Y--
	}
	if f.current[ActionDown] {
		v.Y++
	}
	return v
}

// Shift rolls the current set into the previous set and clears the current
// one, preparing the frame for the next tick's poll.
func (f *InputFrame) Shift() {
	for k := range f.prev {
		delete(f.prev, k)
	}
	for k, v := range f.current {
		f.prev[k] = v
	}
	for k := range f.current {
		delete(f.current, k)
	}
}

// Clear resets both the current and previous sets.
func (f *InputFrame) Clear() {
	for k := range f.current {
		delete(f.current, k)
	}
	for k := range f.prev {
		delete(f.prev, k)
	}
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.current {
		clone.current[k] = v
	}
	for k, v := range f.prev {
		clone.prev[k] = v
	}
	return clone
}
