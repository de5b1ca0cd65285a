// Package crypto wraps the bcrypt primitives behind the operator password
// checks. Passwords are only ever persisted in hashed form.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPasswordAsBcrypt derives the stored form of a password. bcrypt
// embeds a random per-password salt in the hash it emits.
func HashPasswordAsBcrypt(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether password verifies against the stored
// hash. The comparison is constant-time to the extent bcrypt provides.
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
