// Package password implements the password policy and bcrypt hashing.
package password

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dtroode/diagnosis-server/internal/model"
)

// MinLength is the minimum number of characters in a password.
const MinLength = 8

// SpecialCharacters lists the characters that satisfy the special character rule.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

type rule struct {
	ok     func(string) bool
	reason string
}

// rules run in order; the first failure is reported.
var rules = []rule{
	{
		ok:     func(p string) bool { return utf8.RuneCountInString(p) >= MinLength },
		reason: fmt.Sprintf("Password must be at least %d characters long", MinLength),
	},
	{
		ok:     func(p string) bool { return strings.IndexFunc(p, isUpper) >= 0 },
		reason: "Password must contain at least one uppercase letter",
	},
	{
		ok:     func(p string) bool { return strings.IndexFunc(p, isDigit) >= 0 },
		reason: "Password must contain at least one number",
	},
	{
		ok:     func(p string) bool { return strings.ContainsAny(p, SpecialCharacters) },
		reason: "Password must contain at least one special character",
	},
}

// Validate returns a *model.WeakPasswordError for the first rule p breaks.
func Validate(p string) error {
	for _, r := range rules {
		if !r.ok(p) {
			return &model.WeakPasswordError{Reason: r.reason}
		}
	}
	return nil
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
