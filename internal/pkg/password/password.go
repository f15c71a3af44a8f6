package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("password hashing failed")
	ErrMismatch        = errors.New("password does not match")
	ErrInvalidPassword = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// HashOptional returns "" for an empty password: accounts may be email-only.
func HashOptional(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	return Hash(password)
}

func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// Verify accepts any password when no hash is stored.
func Verify(hashedPassword, password string) error {
	if hashedPassword == "" {
		return nil
	}
	if password == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
