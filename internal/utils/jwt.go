package utils // package utils provides helper functions for token creation and verification

import (
    "errors"
    "fmt"
    "strings"
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// DefaultAccessTTLMin is the lifetime of an access token when the caller
// passes a non-positive TTL.
const DefaultAccessTTLMin = 60

// ErrInvalidToken is returned for any token that fails signature, algorithm,
// expiry or claim checks.  Callers do not need to tell these cases apart.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT access token along with its expiry.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// Claims is the payload carried by an access token.  The email is the only
// identity claim; roles are always looked up in the user store.
type Claims struct {
    Email string `json:"email"`
    jwt.RegisteredClaims
}

// NewAccessToken builds and signs an HS256 JWT asserting the given email.
func NewAccessToken(secret, email string, ttlMin int) (AccessToken, error) {
    if ttlMin <= 0 {
        ttlMin = DefaultAccessTTLMin
    }
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := Claims{
        Email: email,
        RegisteredClaims: jwt.RegisteredClaims{
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(exp),
        },
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, fmt.Errorf("sign access token: %w", err)
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies a raw token and returns its claims.
func ParseAccessToken(secret, raw string) (*Claims, error) {
    raw = strings.TrimSpace(raw)
    if raw == "" {
        return nil, ErrInvalidToken
    }
    claims := &Claims{}
    tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    }, jwt.WithExpirationRequired())
    if err != nil || !tok.Valid {
        return nil, ErrInvalidToken
    }
    if claims.Email == "" {
        return nil, ErrInvalidToken
    }
    return claims, nil
}
