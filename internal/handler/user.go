package handler

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/parts-store-api/internal/model"
	"github.com/iliyamo/parts-store-api/internal/repository"
	"github.com/iliyamo/parts-store-api/internal/utils"
)

// UserHandler serves login and account administration.
type UserHandler struct {
	Users        UserStore
	JWTSecret    string
	AccessTTLMin int
}

func NewUserHandler(users UserStore, jwtSecret string, accessTTLMin int) *UserHandler {
	if users == nil {
		panic("nil store passed to NewUserHandler")
	}
	return &UserHandler{Users: users, JWTSecret: jwtSecret, AccessTTLMin: accessTTLMin}
}

type loginResp struct {
	Result  model.UpdateResult `json:"result"`
	Token   string             `json:"token"`
	Expires time.Time          `json:"expiresAt"`
}

// Login handles PUT /user/:email.  The client has already authenticated
// the person (e.g. with a social provider); this records the account and
// returns a fresh access token for the email.  Repeated calls update the
// same account.
func (h *UserHandler) Login(c echo.Context) error {
	email, err := pathEmail(c)
	if err != nil {
		return respondError(c, "login", err)
	}
	doc, err := bindDocument(c)
	if err != nil {
		return respondError(c, "login", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Users.Upsert(ctx, email, doc)
	if err != nil {
		return respondError(c, "login", err)
	}
	tok, err := utils.NewAccessToken(h.JWTSecret, email, h.AccessTTLMin)
	if err != nil {
		return respondError(c, "issue token", err)
	}
	return ok(c, loginResp{Result: res, Token: tok.Token, Expires: tok.Exp})
}

// MakeAdmin handles PUT /user/admin/:email (admin).
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	email, err := pathEmail(c)
	if err != nil {
		return respondError(c, "make admin", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Users.SetAdmin(ctx, email)
	if err != nil {
		return respondError(c, "make admin", err)
	}
	return ok(c, res)
}

// IsAdmin handles GET /admins/:email.  Unknown accounts are not admins.
func (h *UserHandler) IsAdmin(c echo.Context) error {
	email, err := pathEmail(c)
	if err != nil {
		return respondError(c, "admin check", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return respondError(c, "admin check", err)
	}
	return ok(c, echo.Map{"admin": err == nil && u.IsAdmin()})
}

// ListUsersByEmail handles GET /user?email=.
func (h *UserHandler) ListUsersByEmail(c echo.Context) error {
	email, err := required(c.QueryParam("email"), "email")
	if err != nil {
		return respondError(c, "list users", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	users, err := h.Users.ListByEmail(ctx, email)
	if err != nil {
		return respondError(c, "list users", err)
	}
	return ok(c, users)
}

// ListAllUsers handles GET /allusers (admin).
func (h *UserHandler) ListAllUsers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return respondError(c, "list users", err)
	}
	return ok(c, users)
}

// DeleteUser handles DELETE /alluserr/:email (admin).  The path keeps the
// historical spelling used by the frontend.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	email, err := pathEmail(c)
	if err != nil {
		return respondError(c, "delete user", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Users.DeleteByEmail(ctx, email)
	if err != nil {
		return respondError(c, "delete user", err)
	}
	return ok(c, res)
}
