// Package password applies a local strength check to passwords before they
// are sent to the control panel.
package password

import (
	"errors"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

// MinEntropy is the minimum entropy in bits accepted for mailbox, database
// and shell-user passwords. 52 bits rejects dictionary words and short or
// highly repetitive strings.
const MinEntropy = 52

// ErrEmpty indicates an empty password.
var ErrEmpty = errors.New("password must not be empty")

// Validate returns an error when the password is empty or too weak.
func Validate(pw string) error {
	if pw == "" {
		return ErrEmpty
	}
	return passwordvalidator.Validate(pw, MinEntropy)
}

// Entropy reports the estimated entropy of a password in bits.
func Entropy(pw string) float64 {
	return passwordvalidator.GetEntropy(pw)
}
