package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/parts-store-api/internal/handler"
)

// RegisterCustomer registers routes any signed-in caller may use.  Handlers
// that take an email from the query or body check it against the token.
func RegisterCustomer(e *echo.Echo, d Deps, auth echo.MiddlewareFunc) {
	bookings := handler.NewBookingHandler(d.Bookings, d.Events)
	users := handler.NewUserHandler(d.Users, d.JWTSecret, d.AccessTTLMin)
	profiles := handler.NewProfileHandler(d.Profiles)
	reviews := handler.NewReviewHandler(d.Reviews)
	payments := handler.NewPaymentHandler(d.Gateway, d.Payments, d.Events)

	e.POST("/booking", bookings.CreateBooking, auth)
	e.GET("/booking", bookings.ListMyBookings, auth)
	e.DELETE("/booking", bookings.DeleteMyBooking, auth)
	e.GET("/bookingOrder", bookings.ListAllBookings, auth)

	e.POST("/create-payment-intent", payments.CreatePaymentIntent, auth)
	e.PATCH("/cardBooking/:id", payments.PayBooking, auth)

	e.GET("/admins/:email", users.IsAdmin, auth)
	e.PUT("/api/users/profile", profiles.UpsertProfile, auth)
	e.POST("/reviews", reviews.AddReview, auth)
}
