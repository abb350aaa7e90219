package models

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BasicAuth protects the health and admin endpoints. Either the clear text
// or the bcrypt hash of each credential may be given, not both. Leaving all
// fields empty disables authentication.
type BasicAuth struct {
	Username     string `yaml:"username" json:"username"`
	UsernameHash string `yaml:"username_hash" json:"username_hash"`
	Password     string `yaml:"password" json:"password"`
	PasswordHash string `yaml:"password_hash" json:"password_hash"`
}

var ErrConfiguration = fmt.Errorf("configuration error")

func (b BasicAuth) IsEnabled() bool {
	return b.Username != "" || b.UsernameHash != "" || b.Password != "" || b.PasswordHash != ""
}

func (b BasicAuth) Validate() error {
	if b.Username != "" && b.UsernameHash != "" {
		return fmt.Errorf("%w: both username and username_hash are set, please provide only one of them", ErrConfiguration)
	}

	if b.Password != "" && b.PasswordHash != "" {
		return fmt.Errorf("%w: both password and password_hash are set, please provide only one of them", ErrConfiguration)
	}

	if b.UsernameHash != "" {
		if _, err := bcrypt.Cost([]byte(b.UsernameHash)); err != nil {
			return fmt.Errorf("%w: username_hash is not a valid bcrypt hash", ErrConfiguration)
		}
	}

	if b.PasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(b.PasswordHash)); err != nil {
			return fmt.Errorf("%w: password_hash is not a valid bcrypt hash", ErrConfiguration)
		}
	}

	hasUsername := b.Username != "" || b.UsernameHash != ""
	hasPassword := b.Password != "" || b.PasswordHash != ""
	if !hasUsername && hasPassword {
		return fmt.Errorf("%w: username is empty", ErrConfiguration)
	}
	if hasUsername && !hasPassword {
		return fmt.Errorf("%w: password is empty", ErrConfiguration)
	}

	return nil
}
