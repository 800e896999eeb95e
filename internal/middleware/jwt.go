package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/parts-store-api/internal/model"
    "github.com/iliyamo/parts-store-api/internal/utils"
)

// ContextKeyEmail is the echo context key holding the authenticated email.
const ContextKeyEmail = "email"

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// stores the token's email claim in the request context.  A request without
// credentials gets 401; a request whose token fails verification gets 403.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get(echo.HeaderAuthorization)
            if strings.TrimSpace(auth) == "" {
                return deny(c, http.StatusUnauthorized, model.CodeUnauthorized, "unauthorized access")
            }
            // Anything other than "Bearer <token>" counts as a bad credential.
            scheme, raw, ok := strings.Cut(strings.TrimSpace(auth), " ")
            if !ok || !strings.EqualFold(scheme, "Bearer") {
                return deny(c, http.StatusForbidden, model.CodeForbidden, "forbidden access")
            }
            claims, err := utils.ParseAccessToken(secret, raw)
            if err != nil {
                return deny(c, http.StatusForbidden, model.CodeForbidden, "forbidden access")
            }
            c.Set(ContextKeyEmail, claims.Email)
            return next(c)
        }
    }
}

func deny(c echo.Context, status int, code, msg string) error {
    return c.JSON(status, model.ErrorResponse{Error: code, Message: msg})
}
