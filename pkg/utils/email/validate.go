// Package email holds the address check applied to every fetched user.
package email

import "regexp"

// pattern is anchored on both ends. Domain labels are joined by single dots so
// "a@b..com" can never match, and the last label is the alphabetic TLD.
var pattern = regexp.MustCompile(`^[\w.-]+@[\w-]+(?:\.[\w-]+)*\.[a-zA-Z]{2,}$`)

// IsValid reports whether s is a well-formed address of the form
// local@domain.tld. It never fails and keeps no state between calls.
func IsValid(s string) bool {
	return pattern.MatchString(s)
}
