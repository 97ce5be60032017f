package logutil

import "unicode/utf8"

// TruncateForLog shortens s to at most maxLen runes, appending "..." when cut.
// Article bodies and URLs go through it before they reach a log line.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	n := 0
	for i := range s {
		if n == maxLen {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
