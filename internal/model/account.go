package model

import "context"

// DefaultRole is assigned to accounts registered without an explicit role.
const DefaultRole = "medical_pro"

// Account is a registered user keyed by email in the credential document.
type Account struct {
	Password      string         `json:"password"`
	Role          string         `json:"role"`
	CreatedAt     Timestamp      `json:"created_at"`
	LastLogin     *Timestamp     `json:"last_login"`
	Metadata      map[string]any `json:"metadata"`
	EmailVerified bool           `json:"email_verified,omitempty"`
}

// AccountStore loads and saves the whole credential document.
type AccountStore interface {
	Load(ctx context.Context) (map[string]Account, error)
	Save(ctx context.Context, accounts map[string]Account) error
}

// PasswordHasher produces and checks salted one-way password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
