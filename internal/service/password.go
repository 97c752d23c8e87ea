package service

import "strings"

// specialChars is the allow-list of special characters a password must draw
// from to satisfy the policy.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// PasswordPolicyError reports a password that violates the signup policy.
// The message names the first missing character class.
type PasswordPolicyError struct {
	Message string
}

func (e *PasswordPolicyError) Error() string {
	return e.Message
}

// ValidatePassword checks the signup password policy: at least one uppercase
// letter, one lowercase letter, one digit, and one special character. Classes
// are checked in that order and the first missing one is reported.
func ValidatePassword(password string) error {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return &PasswordPolicyError{Message: "password must contain at least one uppercase letter"}
	case !hasLower:
		return &PasswordPolicyError{Message: "password must contain at least one lowercase letter"}
	case !hasDigit:
		return &PasswordPolicyError{Message: "password must contain at least one number"}
	case !hasSpecial:
		return &PasswordPolicyError{Message: "password must contain at least one special character"}
	}
	return nil
}
