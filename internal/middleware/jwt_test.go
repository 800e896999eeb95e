package middleware

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/parts-store-api/internal/model"
    "github.com/iliyamo/parts-store-api/internal/utils"
)

const testSecret = "middleware-secret"

func okHandler(c echo.Context) error {
    return c.String(http.StatusOK, CurrentEmail(c))
}

func serve(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    e.GET("/x", okHandler, mw...)
    req := httptest.NewRequest(http.MethodGet, "/x", nil)
    if authHeader != "" {
        req.Header.Set(echo.HeaderAuthorization, authHeader)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func bearer(t *testing.T, email string) string {
    t.Helper()
    tok, err := utils.NewAccessToken(testSecret, email, 60)
    require.NoError(t, err)
    return "Bearer " + tok.Token
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
    t.Helper()
    var body model.ErrorResponse
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
    return body
}

func TestJWTAuth(t *testing.T) {
    mw := []echo.MiddlewareFunc{JWTAuth(testSecret)}

    t.Run("missing header is unauthorized", func(t *testing.T) {
        rec := serve(t, mw, "")
        assert.Equal(t, http.StatusUnauthorized, rec.Code)
        assert.Equal(t, model.CodeUnauthorized, decodeError(t, rec).Error)
    })

    t.Run("malformed token is forbidden", func(t *testing.T) {
        rec := serve(t, mw, "Bearer nonsense")
        assert.Equal(t, http.StatusForbidden, rec.Code)
        assert.Equal(t, model.CodeForbidden, decodeError(t, rec).Error)
    })

    t.Run("wrong scheme is forbidden", func(t *testing.T) {
        rec := serve(t, mw, "Basic dXNlcjpwYXNz")
        assert.Equal(t, http.StatusForbidden, rec.Code)
    })

    t.Run("token signed with another secret is forbidden", func(t *testing.T) {
        tok, err := utils.NewAccessToken("other", "a@example.com", 60)
        require.NoError(t, err)
        rec := serve(t, mw, "Bearer "+tok.Token)
        assert.Equal(t, http.StatusForbidden, rec.Code)
    })

    t.Run("valid token passes and exposes email", func(t *testing.T) {
        rec := serve(t, mw, bearer(t, "alice@example.com"))
        assert.Equal(t, http.StatusOK, rec.Code)
        assert.Equal(t, "alice@example.com", rec.Body.String())
    })
}
