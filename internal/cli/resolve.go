package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/sleeplog/internal/ledger"
)

// minSessionPrefix is the shortest abbreviation accepted for a session id.
const minSessionPrefix = 4

// resolveSessionID expands input to a full session id. It accepts the id
// itself or any unique prefix of at least minSessionPrefix characters.
func resolveSessionID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("session ID is required")
	}

	ids := sessionIDs(ctx, app)

	// 1. Exact match
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	if len(input) < minSessionPrefix {
		return "", fmt.Errorf("session ID prefix %q is too short (use at least %d characters)", input, minSessionPrefix)
	}

	// 2. Prefix match (case-insensitive)
	prefix := strings.ToLower(input)
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(strings.ToLower(id), prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("session %q: %w", input, ledger.ErrSessionNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("session ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func sessionIDs(ctx context.Context, app *App) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, e := range app.Sleep.Entries(ctx) {
		if !seen[e.SessionID] {
			seen[e.SessionID] = true
			ids = append(ids, e.SessionID)
		}
	}
	return ids
}
