package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Brazilian plates: old format AAA-1234 (dash optional) and Mercosul AAA1A23.
var (
	oldPlateRe      = regexp.MustCompile(`^[A-Z]{3}-?[0-9]{4}$`)
	mercosulPlateRe = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPassword requires at least 8 characters with a letter, a number
// and a special character.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter, hasDigit, hasSpecial := false, false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

// NormalizePlate uppercases and strips the dash so "abc-1234" and "ABC1234"
// compare equal.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), "-", ""))
}

// IsValidPlate accepts old-format and Mercosul plates after normalization.
func IsValidPlate(plate string) bool {
	p := NormalizePlate(plate)
	return oldPlateRe.MatchString(p) || mercosulPlateRe.MatchString(p)
}

// ParseDecimal parses numbers that may arrive string-encoded with a comma
// decimal separator ("45,5"). Returns 0 for anything unparseable; callers
// treat non-positive values as missing, never as an error.
func ParseDecimal(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
