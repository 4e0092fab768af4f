// Package security provides one-way password hashing for user credentials.
package security

import "golang.org/x/crypto/bcrypt"

// CreatePasswordHash hashes a plaintext password with bcrypt. The result is
// opaque to callers and safe to store.
func CreatePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. A malformed or empty
// hash reports false rather than failing, so callers cannot distinguish an
// absent user from a wrong password.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
