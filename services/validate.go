package services

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validEmail reports whether s passes basic email pattern validation
func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}
