package middleware

import (
    "context"
    "errors"
    "net/http"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/mock"

    "github.com/iliyamo/parts-store-api/internal/model"
    "github.com/iliyamo/parts-store-api/internal/repository"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (model.User, error) {
    args := m.Called(ctx, email)
    return args.Get(0).(model.User), args.Error(1)
}

func TestRequireAdmin(t *testing.T) {
    cases := []struct {
        name   string
        user   model.User
        err    error
        status int
        code   string
    }{
        {"admin passes", model.User{Email: "root@example.com", Role: model.RoleAdmin}, nil, http.StatusOK, ""},
        {"customer is forbidden", model.User{Email: "root@example.com"}, nil, http.StatusForbidden, model.CodeForbidden},
        {"missing account is forbidden", model.User{}, repository.ErrNotFound, http.StatusForbidden, model.CodeForbidden},
        {"store failure is upstream failure", model.User{}, errors.New("connection reset"), http.StatusInternalServerError, model.CodeUpstreamFailure},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            users := new(mockUsers)
            users.On("GetByEmail", mock.Anything, "root@example.com").Return(tc.user, tc.err)

            mw := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireAdmin(users)}
            rec := serve(t, mw, bearer(t, "root@example.com"))

            assert.Equal(t, tc.status, rec.Code)
            if tc.code != "" {
                assert.Equal(t, tc.code, decodeError(t, rec).Error)
            }
            users.AssertExpectations(t)
        })
    }
}

func TestRequireAdmin_WithoutAuthIsForbidden(t *testing.T) {
    users := new(mockUsers)
    rec := serve(t, []echo.MiddlewareFunc{RequireAdmin(users)}, "")
    assert.Equal(t, http.StatusForbidden, rec.Code)
    users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}
