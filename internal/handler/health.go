package handler // declare the package name; contains HTTP handlers

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project

    "github.com/iliyamo/parts-store-api/internal/model"
)

// WelcomeText is served at the root path.
const WelcomeText = "Welcome to our menufracturer company!"

// Welcome returns the static welcome text as plain text.
func Welcome(c echo.Context) error {
    return c.String(http.StatusOK, WelcomeText)
}

// Health returns a health-check handler that also pings the store, so load
// balancers stop routing to an instance that lost its database.
func Health(db Pinger) echo.HandlerFunc {
    return func(c echo.Context) error {
        if db != nil {
            ctx, cancel := reqCtx(c)
            defer cancel()
            if err := db.Ping(ctx); err != nil {
                return fail(c, http.StatusServiceUnavailable, model.CodeUpstreamFailure, "database unreachable")
            }
        }
        return ok(c, "ok")
    }
}
