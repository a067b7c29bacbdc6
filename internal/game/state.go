// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePrompting waits for the next line of input.
	StatePrompting State = iota
	// StateValidating checks a parsed number against the accepted range.
	StateValidating
	// StateComparing orders a valid guess against the secret.
	StateComparing
	// StateWon is terminal: the secret was guessed.
	StateWon
	// StateQuit is terminal: the player asked to stop.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateValidating:
		return "validating"
	case StateComparing:
		return "comparing"
	case StateWon:
		return "won"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the loop stops in this state.
func (s State) Terminal() bool {
	return s == StateWon || s == StateQuit
}
