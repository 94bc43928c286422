// Package validation contains input validation for signup and login payloads.
package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

const (
	// MinPasswordLength is the minimum password length for local accounts.
	MinPasswordLength = 8
	// MaxPasswordLength caps the password length to bound bcrypt input.
	MaxPasswordLength = 128
	// MaxEmailLength is the maximum total length of an email address.
	MaxEmailLength = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format and length.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email must be at most %d characters long", MaxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword checks that a password meets the minimum requirements:
// length bounds plus at least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must be at most %d characters long", MaxPasswordLength)
	}

	var hasLetter, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}
	return nil
}

// ValidateNickname checks the display name used on the profile page.
func ValidateNickname(name string) error {
	if name == "" {
		return fmt.Errorf("nickname is required")
	}
	if len([]rune(name)) > 30 {
		return fmt.Errorf("nickname must be at most 30 characters long")
	}
	return nil
}
