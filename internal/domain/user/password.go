package user

import (
	"fmt"
	"unicode"
)

// PasswordHasher hashes and verifies passwords. The salt lives inside the hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// MaxPasswordLength is bcrypt's input limit.
const MaxPasswordLength = 72

// ValidatePassword enforces the configured minimum length plus at least one letter and one digit.
func ValidatePassword(password string, minLength int) error {
	if len(password) < minLength {
		return fmt.Errorf("password must be at least %d characters long", minLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	}

	var hasLetter, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}
