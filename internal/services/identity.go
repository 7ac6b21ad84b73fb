package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingIdentity = errors.New("token carries no identity claim")

// fallbackClaims are consulted, in order, when the configured claim is absent.
var fallbackClaims = []string{"sub", "user_id", "uid"}

type Identity struct {
	UserID string
	Email  string
}

// IdentityDecoder reads the caller identity out of a bearer JWT WITHOUT
// verifying its signature. The result is an unverified claim about who the
// caller is; it is not authentication and must not be treated as a security
// boundary.
type IdentityDecoder struct {
	claim  string
	parser *jwt.Parser
}

func NewIdentityDecoder(claim string) *IdentityDecoder {
	if claim == "" {
		claim = "sub"
	}
	return &IdentityDecoder{
		claim:  claim,
		parser: jwt.NewParser(),
	}
}

func (d *IdentityDecoder) Decode(tokenString string) (*Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	userID := stringClaim(claims, d.claim)
	for _, name := range fallbackClaims {
		if userID != "" {
			break
		}
		userID = stringClaim(claims, name)
	}
	if userID == "" {
		return nil, ErrMissingIdentity
	}

	return &Identity{
		UserID: userID,
		Email:  stringClaim(claims, "email"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}

// MintUnsignedToken builds an alg=none token for local development and tests.
func MintUnsignedToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
	}
	if email != "" {
		claims["email"] = email
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		return "", fmt.Errorf("failed to encode token: %w", err)
	}
	return signed, nil
}
