package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestNewAccessToken_RoundTrip(t *testing.T) {
    tok, err := NewAccessToken(secret, "alice@example.com", 60)
    require.NoError(t, err)
    assert.NotEmpty(t, tok.Token)
    assert.WithinDuration(t, time.Now().Add(time.Hour), tok.Exp, 5*time.Second)

    claims, err := ParseAccessToken(secret, tok.Token)
    require.NoError(t, err)
    assert.Equal(t, "alice@example.com", claims.Email)
}

func TestNewAccessToken_DefaultTTL(t *testing.T) {
    tok, err := NewAccessToken(secret, "bob@example.com", 0)
    require.NoError(t, err)
    assert.WithinDuration(t, time.Now().Add(DefaultAccessTTLMin*time.Minute), tok.Exp, 5*time.Second)
}

func TestParseAccessToken_Rejects(t *testing.T) {
    valid, err := NewAccessToken(secret, "alice@example.com", 60)
    require.NoError(t, err)

    expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
        Email: "alice@example.com",
        RegisteredClaims: jwt.RegisteredClaims{
            ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
        },
    })
    expiredRaw, err := expired.SignedString([]byte(secret))
    require.NoError(t, err)

    noEmail := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
        RegisteredClaims: jwt.RegisteredClaims{
            ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
        },
    })
    noEmailRaw, err := noEmail.SignedString([]byte(secret))
    require.NoError(t, err)

    noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "alice@example.com"})
    noExpRaw, err := noExp.SignedString([]byte(secret))
    require.NoError(t, err)

    cases := map[string]struct {
        secret string
        raw    string
    }{
        "empty":         {secret, ""},
        "garbage":       {secret, "not.a.jwt"},
        "wrong secret":  {"other", valid.Token},
        "expired":       {secret, expiredRaw},
        "missing email": {secret, noEmailRaw},
        "missing exp":   {secret, noExpRaw},
        "alg none":      {secret, "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJlbWFpbCI6ImFAYi5jIn0."},
    }
    for name, tc := range cases {
        t.Run(name, func(t *testing.T) {
            _, err := ParseAccessToken(tc.secret, tc.raw)
            assert.ErrorIs(t, err, ErrInvalidToken)
        })
    }
}
