package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/diagnosis-server/internal/model"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		reason   string
	}{
		{name: "valid", password: "Passw0rd!"},
		{name: "every special character counts", password: "Abcdefg1<"},
		{name: "too short", password: "Pa0!", reason: "Password must be at least 8 characters long"},
		{name: "short multibyte", password: "Ä1!ééé", reason: "Password must be at least 8 characters long"},
		{name: "no uppercase", password: "passw0rd!", reason: "Password must contain at least one uppercase letter"},
		{name: "non-ascii uppercase only", password: "Äassw0rd!", reason: "Password must contain at least one uppercase letter"},
		{name: "no digit", password: "Password!", reason: "Password must contain at least one number"},
		{name: "no special", password: "Passw0rdd", reason: "Password must contain at least one special character"},
		{name: "underscore is not special", password: "Passw0rd_", reason: "Password must contain at least one special character"},
		// length is checked first even when every other rule fails too
		{name: "first failure wins", password: "abc", reason: "Password must be at least 8 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.password)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, model.ErrWeakPassword)
			var weak *model.WeakPasswordError
			require.ErrorAs(t, err, &weak)
			assert.Equal(t, tt.reason, weak.Reason)
		})
	}
}

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)

	again, err := h.Hash("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")

	assert.NoError(t, h.Compare(hash, "Passw0rd!"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), model.ErrInvalidCredentials)
}

func TestBcrypt_CompareMalformedHash(t *testing.T) {
	err := NewBcrypt(bcrypt.MinCost).Compare("not-a-hash", "Passw0rd!")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestBcrypt_TooLong(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost).Hash("A1!" + strings.Repeat("x", 80))
	assert.ErrorIs(t, err, model.ErrWeakPassword)
}

func TestNewBcrypt_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(-1).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(bcrypt.MinCost-1).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcrypt(bcrypt.MinCost).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcrypt(99).cost)
	assert.Equal(t, 12, NewBcrypt(12).cost)
}
