// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "GB"

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	return format(input, phonenumbers.E164)
}

// FormatInternational renders a number for print, e.g. "+44 20 7123 4567".
// Unparseable input is returned trimmed.
func FormatInternational(input string) string {
	return format(input, phonenumbers.INTERNATIONAL)
}

// IsValid reports whether input parses to a valid number (GB by default).
func IsValid(input string) bool {
	number, err := phonenumbers.Parse(strings.TrimSpace(input), defaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(number)
}

func format(input string, style phonenumbers.PhoneNumberFormat) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, style)
}
