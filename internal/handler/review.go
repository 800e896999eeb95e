package handler

import "github.com/labstack/echo/v4"

// ReviewHandler serves customer reviews.
type ReviewHandler struct {
	Reviews ReviewStore
}

func NewReviewHandler(reviews ReviewStore) *ReviewHandler {
	if reviews == nil {
		panic("nil store passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: reviews}
}

// AddReview handles POST /reviews.
func (h *ReviewHandler) AddReview(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return respondError(c, "add review", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Reviews.Insert(ctx, doc)
	if err != nil {
		return respondError(c, "add review", err)
	}
	return created(c, res)
}

// ListReviews handles GET /reviewsget.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	reviews, err := h.Reviews.List(ctx)
	if err != nil {
		return respondError(c, "list reviews", err)
	}
	return ok(c, reviews)
}
