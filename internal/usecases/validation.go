package usecases

import (
	"regexp"
	"strings"
	"time"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// normalizeEmail applies the canonical form used for storage and
// lookups, making email uniqueness case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	return strings.Contains(email, "@")
}

// isDigits reports whether s is exactly n ASCII digits.
func isDigits(s string, n int) bool {
	return len(s) == n && digitsOnly.MatchString(s)
}

// parseDate parses a YYYY-MM-DD date of birth.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
