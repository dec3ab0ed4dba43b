package utils

import (
	"testing"
	"time"

	"admin-panel-server/internal/consts"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试内容：验证签发的运维令牌可以被正确解析。
func TestOperatorToken_RoundTrip(t *testing.T) {
	token, err := GenerateOperatorToken("s3cret", "ops", true, time.Hour)
	require.NoError(t, err)

	claims, err := ParseOperatorToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.True(t, claims.Admin)
}

func TestParseOperatorToken_WrongSecret(t *testing.T) {
	token, err := GenerateOperatorToken("s3cret", "ops", true, time.Hour)
	require.NoError(t, err)

	_, err = ParseOperatorToken("other", token)
	assert.Error(t, err)
}

func TestParseOperatorToken_Expired(t *testing.T) {
	token, err := GenerateOperatorToken("s3cret", "ops", true, -time.Minute)
	require.NoError(t, err)

	_, err = ParseOperatorToken("s3cret", token)
	assert.Error(t, err)
}

// 测试内容：验证类型不符的令牌被拒绝。
func TestParseOperatorToken_WrongType(t *testing.T) {
	claims := OperatorClaims{
		Admin: true,
		Type:  "email_verify",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    consts.TokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = ParseOperatorToken("s3cret", token)
	assert.Error(t, err)
}

func TestGenerateOperatorToken_EmptySecret(t *testing.T) {
	_, err := GenerateOperatorToken("", "ops", true, time.Hour)
	assert.Error(t, err)
}
