package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtSecret = []byte("test-jwt-secret")

func TestGenerateAndVerifyJWT(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, time.Minute, jwtSecret)
	require.NoError(t, err)

	claims, err := VerifyJWT(token, jwtSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), time.Minute, jwtSecret)
	require.NoError(t, err)

	_, err = VerifyJWT(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestVerifyJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), -time.Minute, jwtSecret)
	require.NoError(t, err)

	_, err = VerifyJWT(token, jwtSecret)
	assert.Error(t, err)
}

func TestVerifyJWT_Garbage(t *testing.T) {
	_, err := VerifyJWT("not.a.token", jwtSecret)
	assert.Error(t, err)
}

func TestGenerateJWT_UniqueTokenIDs(t *testing.T) {
	userID := uuid.New()

	t1, err := GenerateJWT(userID, time.Minute, jwtSecret)
	require.NoError(t, err)
	t2, err := GenerateJWT(userID, time.Minute, jwtSecret)
	require.NoError(t, err)

	c1, err := VerifyJWT(t1, jwtSecret)
	require.NoError(t, err)
	c2, err := VerifyJWT(t2, jwtSecret)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
}
