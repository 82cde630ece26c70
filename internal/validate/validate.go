package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	// VIN: 17 chars, no I/O/Q per ISO 3779
	reVIN = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces a simple length window; complexity is the frontend's
// concern here, length is the backend floor.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72 // bcrypt input cap
}

// Role accepts only the closed role set. Unknown values are rejected, not
// downgraded.
func Role(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "customer", true // absent role defaults to customer
	}
	return s, s == "customer" || s == "admin"
}

func VIN(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, s == "" || reVIN.MatchString(s)
}

// ID parses a positive integer path parameter.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Qty clamps an order-item quantity into a sane window.
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Date checks a yyyy-mm-dd value such as a date of birth.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	_, err := time.Parse("2006-01-02", s)
	return s, err == nil
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}
