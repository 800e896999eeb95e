package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/parts-store-api/internal/logger"
	"github.com/iliyamo/parts-store-api/internal/middleware"
	"github.com/iliyamo/parts-store-api/internal/model"
	q "github.com/iliyamo/parts-store-api/internal/queue"
	"github.com/iliyamo/parts-store-api/internal/service"
)

// PaymentHandler creates payment intents and records completed card
// payments against bookings.
type PaymentHandler struct {
	Gateway  PaymentGateway
	Payments PaymentStore
	Events   EventPublisher // optional
}

func NewPaymentHandler(gw PaymentGateway, payments PaymentStore, events EventPublisher) *PaymentHandler {
	if gw == nil || payments == nil {
		panic("nil dependency passed to NewPaymentHandler")
	}
	return &PaymentHandler{Gateway: gw, Payments: payments, Events: events}
}

type intentResp struct {
	ClientSecret string `json:"clientSecret"`
}

// amountInCents converts the body's price (dollars, number or numeric
// string) to cents.  Anything missing, zero, negative, non-numeric or too
// large for int64 cents is 0.
func amountInCents(price interface{}) int64 {
	var f float64
	switch v := price.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	cents := math.Round(f * 100)
	if cents >= math.MaxInt64 {
		return 0
	}
	return int64(cents)
}

// CreatePaymentIntent handles POST /create-payment-intent.  A zero amount
// returns an empty client secret without contacting the gateway.
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	body, err := bindDocument(c)
	if err != nil {
		return respondError(c, "create payment intent", err)
	}
	amount := amountInCents(body["price"])
	if amount == 0 {
		return ok(c, intentResp{ClientSecret: ""})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	secret, err := h.Gateway.CreatePaymentIntent(ctx, amount, service.CurrencyUSD)
	if err != nil {
		logger.Error("payment gateway failed", "amount", amount, "error", err)
		return fail(c, http.StatusBadGateway, model.CodeUpstreamFailure, "payment gateway failed")
	}
	return ok(c, intentResp{ClientSecret: secret})
}

// PayBooking handles PATCH /cardBooking/:id.  The body is the payment
// record from the client; it is stored and the booking is marked paid with
// its transactionId in one transaction.  Not idempotent: resubmitting
// stores another payment.
func (h *PaymentHandler) PayBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, "record payment", err)
	}
	payment, err := bindDocument(c)
	if err != nil {
		return respondError(c, "record payment", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Payments.RecordCardPayment(ctx, id, payment)
	if err != nil {
		return respondError(c, "record payment", err)
	}

	ev := q.NewBookingEvent(q.EventBookingPaid, id.Hex())
	ev.TransactionID = model.StringField(payment, model.FieldTransactionID)
	ev.Email = model.StringField(payment, model.FieldEmail)
	ev.Actor = middleware.CurrentEmail(c)
	publish(h.Events, ev)

	return ok(c, res)
}
