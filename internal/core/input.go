package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionForward        // W - fly forward (-Z)
	ActionBack           // S - fly backward
	ActionLeft           // A - strafe left
	ActionRight          // D - strafe right
	ActionUp             // Space - climb
	ActionDown           // Shift - dive
	ActionFire           // F, mouse button - breathe a fireball
	ActionBegin          // Enter - start or restart a session
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionBegin:
		return "Begin"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputState is the latest keyboard/pointer state.
//
// Host adapters write it between ticks (last writer wins); the simulation
// reads a copy exactly once per tick. Held flags are levels, while fire,
// begin and pause are edge triggers that accumulate until consumed.
type InputState struct {
	held [actionCount]bool

	// PointerX and PointerY are normalized to [-1,1], +Y up.
	PointerX float64
	PointerY float64

	fires int
	begin bool
	pause bool
}

// Press marks an action as held. Fire, Begin and Pause also queue a trigger.
func (s *InputState) Press(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	switch a {
	case ActionFire:
		if !s.held[a] {
			s.fires++
		}
	case ActionBegin:
		s.begin = true
	case ActionPause:
		s.pause = true
	}
	s.held[a] = true
}

// Release clears a held action.
func (s *InputState) Release(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	s.held[a] = false
}

// Set presses or releases an action.
func (s *InputState) Set(a Action, down bool) {
	if down {
		s.Press(a)
	} else {
		s.Release(a)
	}
}

// Held returns true if the action is currently held.
func (s InputState) Held(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return s.held[a]
}

// SetPointer records the pointer position, clamped to [-1,1] on each axis.
func (s *InputState) SetPointer(x, y float64) {
	s.PointerX = ClampF(x, -1, 1)
	s.PointerY = ClampF(y, -1, 1)
}

// QueueFire records a discrete fire trigger (e.g. a pointer-down event).
func (s *InputState) QueueFire() {
	s.fires++
}

// Fires returns the number of fire triggers queued since the last tick.
func (s InputState) Fires() int {
	return s.fires
}

// BeginRequested returns true if a begin/restart trigger is pending.
func (s InputState) BeginRequested() bool {
	return s.begin
}

// PauseRequested returns true if a pause toggle is pending.
func (s InputState) PauseRequested() bool {
	return s.pause
}

// Take returns a snapshot for one tick and clears the pending triggers.
// Held flags and the pointer carry over.
func (s *InputState) Take() InputState {
	snap := *s
	s.fires = 0
	s.begin = false
	s.pause = false
	return snap
}

// ReleaseAll clears every held flag.
func (s *InputState) ReleaseAll() {
	s.held = [actionCount]bool{}
}
