package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/parts-store-api/internal/middleware"
	"github.com/iliyamo/parts-store-api/internal/model"
	q "github.com/iliyamo/parts-store-api/internal/queue"
	"github.com/iliyamo/parts-store-api/internal/repository"
)

// BookingHandler serves customer bookings and the admin order views.
type BookingHandler struct {
	Bookings BookingStore
	Events   EventPublisher // optional
}

func NewBookingHandler(bookings BookingStore, events EventPublisher) *BookingHandler {
	if bookings == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Events: events}
}

// CreateBooking handles POST /booking.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return respondError(c, "create booking", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Bookings.Insert(ctx, doc)
	if err != nil {
		return respondError(c, "create booking", err)
	}
	return created(c, res)
}

// GetBooking handles GET /mybooking/:id, used by the payment page.  An
// unknown id yields {"data": null}.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, "get booking", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ok(c, nil)
	}
	if err != nil {
		return respondError(c, "get booking", err)
	}
	return ok(c, b)
}

// ownEmail reads ?email= and checks it names the caller.
func ownEmail(c echo.Context) (string, error) {
	email, err := required(c.QueryParam("email"), "email")
	if err != nil {
		return "", err
	}
	if email != middleware.CurrentEmail(c) {
		return "", errNotOwner
	}
	return email, nil
}

var errNotOwner = errors.New("not owner")

func ownerFailure(c echo.Context, op string, err error) error {
	if errors.Is(err, errNotOwner) {
		return fail(c, http.StatusForbidden, model.CodeForbidden, "forbidden access")
	}
	return respondError(c, op, err)
}

// ListMyBookings handles GET /booking?email=.  Callers only see their own.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	email, err := ownEmail(c)
	if err != nil {
		return ownerFailure(c, "list bookings", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	bookings, err := h.Bookings.ListByEmail(ctx, email)
	if err != nil {
		return respondError(c, "list bookings", err)
	}
	return ok(c, bookings)
}

// DeleteMyBooking handles DELETE /booking?email=: removes one of the
// caller's bookings.
func (h *BookingHandler) DeleteMyBooking(c echo.Context) error {
	email, err := ownEmail(c)
	if err != nil {
		return ownerFailure(c, "delete booking", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Bookings.DeleteOneByEmail(ctx, email)
	if err != nil {
		return respondError(c, "delete booking", err)
	}
	return ok(c, res)
}

// ListAllBookings handles GET /bookingOrder.
func (h *BookingHandler) ListAllBookings(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	bookings, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return respondError(c, "list bookings", err)
	}
	return ok(c, bookings)
}

// DeleteBooking handles DELETE /bookingOrder/:id (admin).
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, "delete booking", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Bookings.Delete(ctx, id)
	if err != nil {
		return respondError(c, "delete booking", err)
	}
	return ok(c, res)
}

// MarkShipped handles PATCH /api/orders/shipped/:id (admin).  The body's
// status string is stored verbatim.
func (h *BookingHandler) MarkShipped(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, "update booking status", err)
	}
	body, err := bindDocument(c)
	if err != nil {
		return respondError(c, "update booking status", err)
	}
	status := model.StringField(body, model.FieldStatus)

	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Bookings.SetStatus(ctx, id, status)
	if err != nil {
		return respondError(c, "update booking status", err)
	}
	if res.MatchedCount > 0 {
		ev := q.NewBookingEvent(q.EventBookingShipped, id.Hex())
		ev.Status = status
		ev.Actor = middleware.CurrentEmail(c)
		publish(h.Events, ev)
	}
	return ok(c, res)
}
