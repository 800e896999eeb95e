// Package router builds the echo instance: global middleware, the error
// handler and every route with its gates.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/parts-store-api/internal/handler"
	"github.com/iliyamo/parts-store-api/internal/middleware"
)

// Deps is everything the routes need.  It is built once at startup.
type Deps struct {
	Tools    handler.ToolStore
	Bookings handler.BookingStore
	Users    handler.UserStore
	Profiles handler.ProfileStore
	Reviews  handler.ReviewStore
	Payments handler.PaymentStore
	Gateway  handler.PaymentGateway
	Events   handler.EventPublisher // optional
	DB       handler.Pinger         // optional; /healthz skips the ping when nil

	JWTSecret    string
	AccessTTLMin int
	CORSOrigins  []string
}

// New returns an echo instance with all routes registered.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: corsOrigins(d.CORSOrigins)}))

	auth := middleware.JWTAuth(d.JWTSecret)
	admin := middleware.RequireAdmin(d.Users)

	RegisterPublic(e, d)
	RegisterCustomer(e, d, auth)
	RegisterAdmin(e, d, auth, admin)
	return e
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// RegisterPublic registers the routes that need no token: the catalogue,
// login, and the read-only lookups the storefront makes before sign-in.
func RegisterPublic(e *echo.Echo, d Deps) {
	tools := handler.NewToolHandler(d.Tools)
	bookings := handler.NewBookingHandler(d.Bookings, d.Events)
	users := handler.NewUserHandler(d.Users, d.JWTSecret, d.AccessTTLMin)
	profiles := handler.NewProfileHandler(d.Profiles)
	reviews := handler.NewReviewHandler(d.Reviews)

	e.GET("/", handler.Welcome)
	e.GET("/healthz", handler.Health(d.DB))

	e.GET("/tools", tools.ListTools)
	e.GET("/tool/:id", tools.GetTool)
	e.GET("/mybooking/:id", bookings.GetBooking)

	e.PUT("/user/:email", users.Login)
	e.GET("/user", users.ListUsersByEmail)
	e.GET("/userProfile", profiles.ListProfiles)
	e.GET("/reviewsget", reviews.ListReviews)
}
