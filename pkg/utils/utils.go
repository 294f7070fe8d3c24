package utils

import (
	"net/mail"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var alphanumeric = regexp.MustCompile(`[a-zA-Z0-9]`)

// HashPassword hashes a plain password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsEmail returns true if the string is a valid email address.
func IsEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// HasAlphanumeric returns true if the string contains at least one letter
// or digit. Free-text fields must not be pure whitespace or punctuation.
func HasAlphanumeric(s string) bool {
	return alphanumeric.MatchString(s)
}
