package postgres

import (
	"fmt"

	"github.com/google/uuid"
)

// parseSkinUUID parses a skin ID string to uuid.UUID with consistent error message.
// Use this instead of repeating uuid.Parse + error wrapping throughout the codebase.
func parseSkinUUID(skinID string) (uuid.UUID, error) {
	u, err := uuid.Parse(skinID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid skin id: %w", err)
	}
	return u, nil
}
