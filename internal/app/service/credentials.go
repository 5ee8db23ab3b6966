package service

import (
	"crypto/subtle"

	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
	"github.com/vibecommerce/vibecommerce-backend/pkg/util"
)

// CredentialVerifier abstracts how passwords are stored and checked. The
// demo ships with plaintext comparison; bcrypt can be switched on through
// configuration without touching the auth flow.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}

// NewCredentialVerifier selects a verifier by mode name. Unknown modes fall
// back to plaintext with a warning.
func NewCredentialVerifier(mode string) CredentialVerifier {
	switch mode {
	case "bcrypt":
		return BcryptVerifier{}
	case "plaintext", "":
		return PlaintextVerifier{}
	default:
		logger.Warn("Unknown credential mode, falling back to plaintext", map[string]interface{}{
			"mode": mode,
		})
		return PlaintextVerifier{}
	}
}

// PlaintextVerifier stores passwords as-is and compares them directly.
// Demo use only.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Verify(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

// BcryptVerifier stores salted bcrypt hashes
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(password string) (string, error) {
	return util.HashPassword(password)
}

func (BcryptVerifier) Verify(password, stored string) bool {
	return util.CheckPassword(password, stored)
}
