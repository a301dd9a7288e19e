package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_RoundTrip(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 1, 10, 30, 0, 123000000, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:30:00.123Z"`, string(data))

	var got Timestamp
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, ts.Equal(got.Time))
}

func TestTimestamp_LegacyFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "with microseconds",
			raw:  `"2024-03-01T10:30:00.654321"`,
			want: time.Date(2024, 3, 1, 10, 30, 0, 654321000, time.Local),
		},
		{
			name: "without fraction",
			raw:  `"2024-03-01T10:30:00"`,
			want: time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.True(t, tt.want.Equal(got.Time))
		})
	}
}

func TestTimestamp_Invalid(t *testing.T) {
	var got Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestAccount_NullLastLogin(t *testing.T) {
	raw := `{"password":"h","role":"medical_pro","created_at":"2024-03-01T10:30:00","last_login":null,"metadata":{}}`

	var acc Account
	require.NoError(t, json.Unmarshal([]byte(raw), &acc))
	assert.Nil(t, acc.LastLogin)
	assert.False(t, acc.EmailVerified)
	assert.Equal(t, DefaultRole, acc.Role)
}

func TestSession_Expired(t *testing.T) {
	expiry := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := Session{Email: "a@b.com", Expiry: NewTimestamp(expiry)}

	assert.False(t, s.Expired(expiry.Add(-time.Second)))
	assert.True(t, s.Expired(expiry))
	assert.True(t, s.Expired(expiry.Add(time.Second)))
}

func TestWeakPasswordError_Is(t *testing.T) {
	var err error = &WeakPasswordError{Reason: "too short"}
	assert.ErrorIs(t, err, ErrWeakPassword)
	assert.Equal(t, "too short", err.Error())
}
