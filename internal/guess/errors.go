package guess

const rangeMessage = "Value should be between 1 and 100"

// ValidationError reports a value outside the accepted range.
// Msg is display text for the player.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
