package utils

import (
	gopass "github.com/nbutton23/zxcvbn-go"
)

// minEntropy mirrors the score threshold; a password scoring 3 is rarely below it.
const minEntropy = 37

// IsStrongPassword reports whether password reaches minScore on the zxcvbn
// scale. userInputs (username, email, names) count against the password.
// A minScore of 0 accepts everything.
func IsStrongPassword(password string, minScore int, userInputs ...string) bool {
	if minScore <= 0 {
		return true
	}
	strength := gopass.PasswordStrength(password, userInputs)
	return strength.Score >= minScore && strength.Entropy >= minEntropy
}
