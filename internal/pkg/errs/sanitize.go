package errs

import "strings"

// sanitize flattens control characters in error message fragments so that
// multi-line values cannot break log formatting.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
