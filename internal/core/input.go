package core

// Action represents a semantic simulation command, abstracted from physical
// key presses so hosts can share one command set.
type Action int

const (
	ActionNone       Action = iota
	ActionStep              // N - advance one generation
	ActionRunToggle         // Space - run/pause
	ActionRandomize         // R - coin-flip every cell
	ActionClear             // C - kill every cell
	ActionToggleCell        // Enter, T - flip the cell under the cursor
	ActionUp                // Cursor up
	ActionDown              // Cursor down
	ActionLeft              // Cursor left
	ActionRight             // Cursor right
	ActionGlider            // G - insert a glider at the cursor
	ActionPulsar            // P - insert a pulsar at the cursor
	ActionFaster            // + - raise the tick rate
	ActionSlower            // - - lower the tick rate
	ActionScreenshot        // Ctrl+S - dump the board to a file
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStep:
		return "Step"
	case ActionRunToggle:
		return "RunToggle"
	case ActionRandomize:
		return "Randomize"
	case ActionClear:
		return "Clear"
	case ActionToggleCell:
		return "ToggleCell"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionGlider:
		return "Glider"
	case ActionPulsar:
		return "Pulsar"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
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
