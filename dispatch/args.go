package dispatch

import (
	"strings"

	"github.com/spf13/cast"
)

// stringArg coerces args[key] to a trimmed string. Absent or uncoercible
// values yield "".
func stringArg(args map[string]any, key string) string {
	value, ok := args[key]
	if !ok || value == nil {
		return ""
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// intArg coerces args[key] to an int, substituting fallback when the value
// is absent or cannot be interpreted as an integer. It never fails: a bad
// top_k must not break the tool call.
func intArg(args map[string]any, key string, fallback int) int {
	value, ok := args[key]
	if !ok || value == nil {
		return fallback
	}
	n, err := cast.ToIntE(value)
	if err != nil {
		return fallback
	}
	return n
}
