package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedDigest signals a stored digest that bcrypt cannot interpret.
var ErrMalformedDigest = errors.New("malformed password digest")

// HashPassword hashes a plaintext password with the configured cost. The cost
// is chosen once at service construction; verification latency in the tens of
// milliseconds is intentional.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a plaintext against its stored digest. A wrong
// password returns (false, nil); only an unreadable digest yields an error.
func VerifyPassword(digest, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Join(ErrMalformedDigest, err)
	}
}
