// Package token encodes and verifies the signed claim sets used across the
// service: access and refresh tokens, telegram login tokens, email
// verification and password-update tokens. Each purpose signs with its own
// secret, so a token issued for one purpose can never be replayed as another.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherrors "github.com/ezov86/nto-users/internal/errors"
)

// Encode serializes the extra claims plus "sub" and signs them with the given
// secret. The token never expires; use EncodeWithExpiry for expiring tokens.
func Encode(sub string, secret string, extra map[string]string) (string, error) {
	return encode(sub, secret, nil, extra)
}

// EncodeWithExpiry is Encode with an "exp" claim set to now+expireIn.
func EncodeWithExpiry(sub string, secret string, expireIn time.Duration, extra map[string]string) (string, error) {
	exp := time.Now().Add(expireIn)
	return encode(sub, secret, &exp, extra)
}

func encode(sub string, secret string, exp *time.Time, extra map[string]string) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}

	claims["sub"] = sub
	if exp != nil {
		claims["exp"] = jwt.NewNumericDate(*exp)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Decode verifies the token's signature and expiry and checks that every
// claim in requiredClaims is present; "sub" is checked in any way. All string
// claims are returned. Any fault yields ErrInvalidToken.
func Decode(tokenString string, requiredClaims []string, secret string) (map[string]string, error) {
	claims := jwt.MapClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: verification failed", autherrors.ErrInvalidToken)
	}

	for _, required := range append([]string{"sub"}, requiredClaims...) {
		if _, ok := claims[required]; !ok {
			return nil, fmt.Errorf("%w: missing claim %q", autherrors.ErrInvalidToken, required)
		}
	}

	payload := make(map[string]string, len(claims))
	for k, v := range claims {
		if s, ok := v.(string); ok {
			payload[k] = s
		}
	}

	return payload, nil
}

// JoinScopes converts a scope set to the space-joined wire form used inside
// tokens. Scope strings must not contain whitespace.
func JoinScopes(scopes []string) string {
	return strings.Join(scopes, " ")
}

// SplitScopes is the inverse of JoinScopes. An empty string yields an empty
// set.
func SplitScopes(s string) []string {
	return strings.Fields(s)
}
