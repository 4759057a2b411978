package domain

import "regexp"

// Business validation constants
const (
	MaxNameLength = 50

	// UnknownCustomerName placeholder assigned when a reservation request
	// introduces a new phone number without a customer name
	UnknownCustomerName = "Unknown"
)

// Time format constants
const (
	DateTimeFormat = "2006-01-02 15:04:05" // YYYY-MM-DD HH:MM:SS
)

// PhonePattern optional +CCC country code, then 3-3-3 digit groups with
// optional spaces, e.g. "+420 777 123 456" or "777123456"
var PhonePattern = regexp.MustCompile(`^(?:\+\d{3}\s?)?[1-9][0-9]{2}\s?[0-9]{3}\s?[0-9]{3}$`)

// IsValidPhone reports whether the phone number matches PhonePattern.
func IsValidPhone(phone string) bool {
	return PhonePattern.MatchString(phone)
}

// IsValidName reports whether a natural-key name is non-empty and within limits.
func IsValidName(name string) bool {
	return len(name) > 0 && len(name) <= MaxNameLength
}
