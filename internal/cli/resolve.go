package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveItineraryID accepts a full itinerary ID or a unique prefix of one,
// such as the 8 characters 'list' shows.
func resolveItineraryID(ctx context.Context, a *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("itinerary ID is required")
	}

	its, err := a.Schedules.List(ctx, 0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, it := range its {
		if it.ID == input {
			return it.ID, nil
		}
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("itinerary not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("itinerary ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
