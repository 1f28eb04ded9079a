package auth

import (
	"talentbridge/internal/domain/user"
	"talentbridge/internal/pkg/password"
)

// Credentials is a syntactically valid login attempt; it says nothing about whether the account exists.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	pw, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: pw,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

// Verify checks the password against a stored bcrypt hash.
func (c Credentials) Verify(hash string) error {
	return password.ComparePassword(hash, c.password.Value())
}
