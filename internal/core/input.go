package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the session to work with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move cursor up
	ActionDown             // S, Down arrow - move cursor down
	ActionLeft             // A, Left arrow - move cursor left
	ActionRight            // D, Right arrow - move cursor right
	ActionSelect           // Space, Enter - select/confirm the cursor cell
	ActionBack             // B, Escape - cancel selection / go back
	ActionRestart          // R key - restart level after win/lose
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionHammer           // 1 - arm the hammer power-up
	ActionBomb             // 2 - arm the bomb power-up
	ActionColorBomb        // 3 - arm the color bomb power-up
	ActionShuffle          // 4 - use the shuffle power-up
	ActionMoves            // 5 - use the extra moves power-up
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
	case ActionSelect:
		return "Select"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHammer:
		return "Hammer"
	case ActionBomb:
		return "Bomb"
	case ActionColorBomb:
		return "ColorBomb"
	case ActionShuffle:
		return "Shuffle"
	case ActionMoves:
		return "ExtraMoves"
	default:
		return "Unknown"
	}
}
