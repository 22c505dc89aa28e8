package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces a simple length window; composition rules are left to the
// caller's policy.
func Password(s string) bool {
	l := len(s)
	return l >= 6 && l <= 72 // bcrypt input cap
}

// ID validates a resource identifier (uuid or seed-style slug).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// ProductName trims and bounds a product name.
func ProductName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxNameLen {
		return "", false
	}
	return s, true
}

// Description bounds an optional description.
func Description(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= maxDescriptionLen
}

// DisplayName validates a user display name.
func DisplayName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}
