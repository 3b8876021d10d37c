package viewserver

import "strings"

// The server reports a missing view with a human-readable message, not a
// distinct exit code, and older releases misspell it ("No viwe"). Matching
// loosely on both spellings is fragile but is the only signal the CLI gives;
// keep it until the transport grows a structured not-found channel.
var absenceMarkers = []string{
	"no view",
	"no viwe",
}

// IsAbsentOutput classifies a get-view response as "view does not exist".
// Empty output counts as absent.
func IsAbsentOutput(output string) bool {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return true
	}

	lowered := strings.ToLower(trimmed)
	for _, marker := range absenceMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
