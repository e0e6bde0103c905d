package jwt

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestNewEmptyKey(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestSignAndParse(t *testing.T) {
	j, err := New("secret")
	require.NoError(t, err)

	user := &User{
		ID:        42,
		Username:  "admin",
		IsAdmin:   true,
		SessionID: "session-id",
		Expires:   time.Now().Add(time.Hour).Unix(),
	}

	token, err := j.SignToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := j.ParseUser(token)
	require.NoError(t, err)
	assert.Equal(t, user, parsed)
}

func TestParseWithWrongKey(t *testing.T) {
	j1, err := New("secret-one")
	require.NoError(t, err)
	j2, err := New("secret-two")
	require.NoError(t, err)

	token, err := j1.SignToken(&User{
		ID:        1,
		Username:  "carol",
		SessionID: "sid",
		Expires:   time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, err = j2.ParseUser(token)
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	j, err := New("secret")
	require.NoError(t, err)

	token, err := j.SignToken(&User{
		ID:        1,
		Username:  "carol",
		SessionID: "sid",
		Expires:   time.Now().Add(-time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, err = j.ParseUser(token)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	j, err := New("secret")
	require.NoError(t, err)

	_, err = j.ParseUser("")
	assert.Error(t, err)

	_, err = j.ParseUser("not-a-token")
	assert.Error(t, err)
}
