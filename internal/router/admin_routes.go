package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/parts-store-api/internal/handler"
)

// RegisterAdmin registers catalogue management, order administration and
// account administration.  Every route requires a token whose account has
// the admin role.
func RegisterAdmin(e *echo.Echo, d Deps, auth, admin echo.MiddlewareFunc) {
	tools := handler.NewToolHandler(d.Tools)
	bookings := handler.NewBookingHandler(d.Bookings, d.Events)
	users := handler.NewUserHandler(d.Users, d.JWTSecret, d.AccessTTLMin)

	e.POST("/addItem", tools.AddTool, auth, admin)
	e.DELETE("/manage/:id", tools.DeleteTool, auth, admin)

	e.DELETE("/bookingOrder/:id", bookings.DeleteBooking, auth, admin)
	e.PATCH("/api/orders/shipped/:id", bookings.MarkShipped, auth, admin)

	e.PUT("/user/admin/:email", users.MakeAdmin, auth, admin)
	e.GET("/allusers", users.ListAllUsers, auth, admin)
	e.DELETE("/alluserr/:email", users.DeleteUser, auth, admin)
}
