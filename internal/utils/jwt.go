package utils

import (
	"errors"
	"fmt"
	"time"

	"admin-panel-server/internal/consts"

	"github.com/golang-jwt/jwt/v5"
)

const operatorTokenType = "operator"

// OperatorClaims 运维令牌，用于调用 /api/admin 下的接口
type OperatorClaims struct {
	Admin bool   `json:"admin"`
	Type  string `json:"type"` // "operator"
	jwt.RegisteredClaims
}

func GenerateOperatorToken(secret, subject string, admin bool, duration time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := OperatorClaims{
		Admin: admin,
		Type:  operatorTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    consts.TokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseOperatorToken(secret, tokenString string) (*OperatorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(consts.TokenIssuer))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*OperatorClaims); ok && token.Valid {
		if claims.Type != operatorTokenType {
			return nil, errors.New("invalid token type")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
