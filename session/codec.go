package session

import (
	"errors"
	"time"

	"workmate/models"

	"github.com/golang-jwt/jwt"
)

// The persisted identity is encoded as a signed HS256 token so a tampered
// or truncated session file fails verification instead of restoring a
// forged identity.

// EncodeIdentity signs the identity for durable storage.
func EncodeIdentity(id models.Identity, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id.ID,
		"name":  id.Name,
		"email": id.Email,
		"role":  string(id.Role),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// DecodeIdentity verifies a persisted token and rebuilds the identity.
// Any failure (bad signature, expiry, missing claims) is an error; callers
// treat it as "no session".
func DecodeIdentity(tokenString string, secret []byte) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	id := models.Identity{
		ID:    stringClaim(claims, "sub"),
		Name:  stringClaim(claims, "name"),
		Email: stringClaim(claims, "email"),
		Role:  models.Role(stringClaim(claims, "role")),
	}
	if !id.WellFormed() {
		return nil, errors.New("session token missing identity claims")
	}
	return &id, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
