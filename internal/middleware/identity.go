package middleware

// identity.go holds helpers shared by middleware and handlers for reading
// the authenticated identity stored by JWTAuth.

import "github.com/labstack/echo/v4"

// CurrentEmail returns the email claim of the authenticated caller, or ""
// when the route is not behind JWTAuth.
func CurrentEmail(c echo.Context) string {
    if v, ok := c.Get(ContextKeyEmail).(string); ok {
        return v
    }
    return ""
}
