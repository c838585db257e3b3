package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(hash), "argon2id$v=19$"))
	assert.NoError(t, VerifyPassword(string(hash), "correct horse battery staple"))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := Hash("secret")
	require.NoError(t, err)

	assert.Error(t, VerifyPassword(string(hash), "not-the-secret"))
}

func TestHash_SaltsDiffer(t *testing.T) {
	h1, err := Hash("same password")
	require.NoError(t, err)
	h2, err := Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, string(h1), string(h2))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("garbage", "password"))
	assert.Error(t, VerifyPassword("argon2id$v=19$m=x,t=y,p=z$salt$hash", "password"))
}
