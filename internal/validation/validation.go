// Package validation contains input validation helpers for the API boundary.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	minPasswordLen = 6
	maxNameLen     = 100
)

// ValidateName checks the display name supplied at registration.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("Name is required")
	}
	if len(name) > maxNameLen {
		return errors.New("Name too long (max 100 characters)")
	}
	return nil
}

// ValidateEmail checks that the email is well formed.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("Please include a valid email")
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errors.New("Please enter a password with 6 or more characters")
	}
	return nil
}
