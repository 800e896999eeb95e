package middleware // middleware provides shared request processing for handlers

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parts-store-api/internal/logger"
    "github.com/iliyamo/parts-store-api/internal/model"
    "github.com/iliyamo/parts-store-api/internal/repository"
)

// UserLookup is the part of the user store the admin check needs.
// GetByEmail must return repository.ErrNotFound for unknown accounts.
type UserLookup interface {
    GetByEmail(ctx context.Context, email string) (model.User, error)
}

// RequireAdmin returns a middleware that lets the request through only when
// the authenticated account exists and has the admin role.  Roles are not
// carried in the token, so every call costs one store lookup.  It must be
// chained after JWTAuth.
func RequireAdmin(users UserLookup) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            email := CurrentEmail(c)
            if email == "" {
                return deny(c, http.StatusForbidden, model.CodeForbidden, "forbidden")
            }
            ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
            defer cancel()

            u, err := users.GetByEmail(ctx, email)
            switch {
            case errors.Is(err, repository.ErrNotFound):
                return deny(c, http.StatusForbidden, model.CodeForbidden, "forbidden")
            case err != nil:
                logger.Error("admin lookup failed", "email", email, "error", err)
                return deny(c, http.StatusInternalServerError, model.CodeUpstreamFailure, "user lookup failed")
            case !u.IsAdmin():
                return deny(c, http.StatusForbidden, model.CodeForbidden, "forbidden")
            }
            return next(c)
        }
    }
}
