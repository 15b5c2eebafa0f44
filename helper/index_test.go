package helper

import (
	"testing"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/constants"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentCodeHash(t *testing.T) {
	hash, err := HashDepartmentCode("123")
	require.NoError(t, err)

	assert.True(t, CheckDepartmentCodeHash("123", hash))
	assert.False(t, CheckDepartmentCodeHash("456", hash))
}

func TestAccessTokenRoundtrip(t *testing.T) {
	JwtSecret = []byte("test-secret")

	claim := model.TokenClaim{Name: "Lan", Department: constants.DEPT_HK}
	tokenString, err := GenerateAccessToken(claim)
	require.NoError(t, err)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, claim, ClaimFromToken(token))
}

func TestParseTokenRejectsTampered(t *testing.T) {
	JwtSecret = []byte("test-secret")

	tokenString, err := GenerateAccessToken(model.TokenClaim{Name: "Lan", Department: constants.DEPT_HK})
	require.NoError(t, err)

	JwtSecret = []byte("secret-khac")
	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}
