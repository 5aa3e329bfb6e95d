package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reSKU   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reStore = regexp.MustCompile(`^[A-Za-z0-9_-]{1,16}$`)
	reMob   = regexp.MustCompile(`^[0-9 -]{6,20}$`)
)

func Email(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 0 || len(s) > 64 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// SKU validates a product identifier.
func SKU(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSKU.MatchString(s)
}

// StoreID validates a pickup store identifier (normalized upper-case).
func StoreID(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, s != "" && reStore.MatchString(s)
}

func Mobile(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reMob.MatchString(s)
}

// Qty parses a quantity without clamping; range rules belong to the cart.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Price parses a positive money amount with at most 2 decimal places.
func Price(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// Password enforces at least 8 chars with upper, lower and digit.
func Password(s string) bool {
	if len(s) < 8 || len(s) > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}
