package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"partyplanner/internal/domain"
)

// Issuer is the iss claim of tokens minted by this service.
const Issuer = "partyplanner"

type jwtClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

const inviteScope = "invites:send"

// JWT signs and verifies HS256 tokens with a shared secret.
type JWT struct {
	secret []byte
}

// NewJWT returns a JWT issuer and verifier for secret.
func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

var (
	_ domain.TokenIssuer   = (*JWT)(nil)
	_ domain.TokenVerifier = (*JWT)(nil)
)

func (j *JWT) Issue(subject string, expiry time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject is required")
	}
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Scope: inviteScope,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (j *JWT) Verify(token string) (string, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.Scope != inviteScope {
		return "", fmt.Errorf("invalid token: scope %q", claims.Scope)
	}
	return claims.Subject, nil
}
