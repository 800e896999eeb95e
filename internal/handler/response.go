package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/parts-store-api/internal/logger"
	"github.com/iliyamo/parts-store-api/internal/model"
	q "github.com/iliyamo/parts-store-api/internal/queue"
	"github.com/iliyamo/parts-store-api/internal/repository"
)

// storeTimeout bounds every store or gateway call made by a handler.
const storeTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), storeTimeout)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, model.DataResponse{Data: data})
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, model.DataResponse{Data: data})
}

func fail(c echo.Context, status int, code, msg string) error {
	return c.JSON(status, model.ErrorResponse{Error: code, Message: msg})
}

// errInvalidBody marks a request body that is not a JSON object.
var errInvalidBody = errors.New("invalid body")

// respondError reports a failed step of a handler.  Identifier, body and
// not-found errors keep their meaning; anything else is an upstream failure
// and is logged with the operation name.
func respondError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return fail(c, http.StatusBadRequest, model.CodeInvalidIdentifier, err.Error())
	case errors.Is(err, errInvalidBody):
		return fail(c, http.StatusBadRequest, model.CodeInvalidBody, "invalid body")
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, model.CodeNotFound, "not found")
	}
	logger.Error("request failed", "op", op, "error", err, "request_id", c.Response().Header().Get(echo.HeaderXRequestID))
	return fail(c, http.StatusInternalServerError, model.CodeUpstreamFailure, op+" failed")
}

// pathID parses the :id path parameter into an ObjectID.
func pathID(c echo.Context) (primitive.ObjectID, error) {
	return repository.ParseID(c.Param("id"))
}

// required rejects an empty path or query value as an invalid identifier.
func required(v, name string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%s is required: %w", name, repository.ErrInvalidID)
	}
	return v, nil
}

// pathEmail returns the decoded :email path parameter.  Clients usually
// percent-encode the @, and the store and token must see the plain address.
func pathEmail(c echo.Context) (string, error) {
	raw := c.Param("email")
	email, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("email %q: %w", raw, repository.ErrInvalidID)
	}
	return required(email, "email")
}

// bindDocument decodes a JSON object body.  Only the body is read so path
// and query parameters never leak into stored documents.
func bindDocument(c echo.Context) (model.Document, error) {
	doc := model.Document{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &doc); err != nil {
		return nil, errInvalidBody
	}
	if doc == nil {
		doc = model.Document{}
	}
	if !storableKeys(doc) {
		return nil, errInvalidBody
	}
	return doc, nil
}

// storableKeys reports whether every key, at any depth, can be written with
// $set: no dots and no leading $.
func storableKeys(v interface{}) bool {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, e := range t {
			if strings.HasPrefix(k, "$") || strings.Contains(k, ".") || !storableKeys(e) {
				return false
			}
		}
	case model.Document:
		return storableKeys(map[string]interface{}(t))
	case []interface{}:
		for _, e := range t {
			if !storableKeys(e) {
				return false
			}
		}
	}
	return true
}

// publish sends ev in the background; the request does not wait for the
// broker and a failure is only logged.
func publish(events EventPublisher, ev q.BookingEvent) {
	if events == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := events.PublishBookingEvent(ctx, ev); err != nil {
			logger.Warn("publish booking event failed", "type", ev.Type, "booking_id", ev.BookingID, "error", err)
		}
	}()
}

// ErrorHandler renders errors that reach echo (unknown routes, wrong
// methods, recovered panics) with the standard error envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	code := model.CodeUpstreamFailure
	msg := "internal error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, isStr := he.Message.(string); isStr {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
		switch status {
		case http.StatusUnauthorized:
			code = model.CodeUnauthorized
		case http.StatusForbidden:
			code = model.CodeForbidden
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			code = model.CodeNotFound
		case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
			code = model.CodeInvalidBody
		}
	} else {
		logger.Error("unhandled error", "error", err, "path", c.Path())
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, model.ErrorResponse{Error: code, Message: msg})
}
