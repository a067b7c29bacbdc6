// Package guess provides the validated guess value used by the game loop.
package guess

// Bounds of an accepted guess, inclusive.
const (
	Min = 1
	Max = 100
)

// Ordering is the result of comparing a guess against the secret.
type Ordering int

const (
	// Less means the guess is below the secret.
	Less Ordering = iota - 1
	// Equal means the guess matches the secret.
	Equal
	// Greater means the guess is above the secret.
	Greater
)

// String returns a human-readable ordering name.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Guess is an integer known to lie within [Min, Max].
// The zero Guess holds Min.
type Guess struct {
	offset int // value - Min
}

// New validates value and wraps it in a Guess.
func New(value int) (Guess, error) {
	if value < Min || value > Max {
		return Guess{}, &ValidationError{Msg: rangeMessage}
	}
	return Guess{offset: value - Min}, nil
}

// Value returns the wrapped integer.
func (g Guess) Value() int {
	return g.offset + Min
}

// Compare orders the guess against secret.
func (g Guess) Compare(secret int) Ordering {
	value := g.Value()
	switch {
	case value < secret:
		return Less
	case value > secret:
		return Greater
	default:
		return Equal
	}
}
