package guides

import "strings"

func trim(s string) string { return strings.TrimSpace(s) }

// optional maps a blank form field to SQL NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
