package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Operator is the single console account configured through the environment.
type Operator struct {
	username     string
	passwordHash []byte
}

func NewOperator(username, bcryptHash string) *Operator {
	return &Operator{username: username, passwordHash: []byte(bcryptHash)}
}

func (o *Operator) Check(username, password string) error {
	// compare both parts so a wrong username costs the same as a wrong password
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(o.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(o.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword is used by tooling and tests to produce AUTH_PASSWORD_HASH values.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}
