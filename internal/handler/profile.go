package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/parts-store-api/internal/middleware"
	"github.com/iliyamo/parts-store-api/internal/model"
)

// ProfileHandler serves the free-form "my profile" page data.
type ProfileHandler struct {
	Profiles ProfileStore
}

func NewProfileHandler(profiles ProfileStore) *ProfileHandler {
	if profiles == nil {
		panic("nil store passed to NewProfileHandler")
	}
	return &ProfileHandler{Profiles: profiles}
}

// UpsertProfile handles PUT /api/users/profile.  The profile is keyed by the
// body's email, which must be the caller's own.
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return respondError(c, "update profile", err)
	}
	email, err := required(model.StringField(doc, model.FieldEmail), "email")
	if err != nil {
		return respondError(c, "update profile", err)
	}
	if email != middleware.CurrentEmail(c) {
		return ownerFailure(c, "update profile", errNotOwner)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Profiles.Upsert(ctx, email, doc)
	if err != nil {
		return respondError(c, "update profile", err)
	}
	return ok(c, echo.Map{"result": res})
}

// ListProfiles handles GET /userProfile?email=.
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	email, err := required(c.QueryParam("email"), "email")
	if err != nil {
		return respondError(c, "list profiles", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	profiles, err := h.Profiles.ListByEmail(ctx, email)
	if err != nil {
		return respondError(c, "list profiles", err)
	}
	return ok(c, profiles)
}
