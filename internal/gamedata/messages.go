package gamedata

import "fmt"

// Messages holds the player-facing text loaded from messages.json.
type Messages struct {
	Welcome       string `json:"welcome"`        // Printed once before the first prompt
	Prompt        string `json:"prompt"`         // Printed before every read
	Quitting      string `json:"quitting"`       // Farewell on the quit command
	InvalidNumber string `json:"invalid_number"` // Input that is neither quit nor an integer
	YouGuessed    string `json:"you_guessed"`    // Format string taking the guessed value
	TooSmall      string `json:"too_small"`
	TooBig        string `json:"too_big"`
	YouWin        string `json:"you_win"`
}

// LoadMessages loads the message catalog from the embedded messages.json file.
func LoadMessages() (*Messages, error) {
	m, err := Load[Messages]("messages.json")
	if err != nil {
		return nil, err
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// validate reports the first empty entry in catalog order.
func (m *Messages) validate() error {
	entries := []struct {
		key  string
		text string
	}{
		{"welcome", m.Welcome},
		{"prompt", m.Prompt},
		{"quitting", m.Quitting},
		{"invalid_number", m.InvalidNumber},
		{"you_guessed", m.YouGuessed},
		{"too_small", m.TooSmall},
		{"too_big", m.TooBig},
		{"you_win", m.YouWin},
	}
	for _, e := range entries {
		if e.text == "" {
			return fmt.Errorf("messages.json: missing %q", e.key)
		}
	}
	return nil
}

// MustLoadMessages loads the message catalog, panicking on error.
func MustLoadMessages() *Messages {
	m, err := LoadMessages()
	if err != nil {
		panic(err)
	}
	return m
}
