package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load decodes an embedded JSON catalog into T.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read catalog %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("decode catalog %s: %w", filename, err)
	}

	return result, nil
}
