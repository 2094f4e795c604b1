package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newswire/internal/delivery/http/middleware"
	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestIdentityHandler_GetUser_RejectsNonNumericID(t *testing.T) {
	h := &IdentityHandler{}

	c, _ := newTestContext(http.MethodGet, "/users/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	middleware.SetCurrentUser(c, &entity.User{ID: 1, Role: entity.RoleSuperuser})

	err := h.GetUser(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestIdentityHandler_GetUser_WithoutResolvedUser(t *testing.T) {
	h := &IdentityHandler{}

	c, _ := newTestContext(http.MethodGet, "/users/7")
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := h.GetUser(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestIdentityHandler_GetUser_ForbidsReadingAnotherUser(t *testing.T) {
	h := &IdentityHandler{}

	c, _ := newTestContext(http.MethodGet, "/users/7")
	c.SetParamNames("id")
	c.SetParamValues("7")
	middleware.SetCurrentUser(c, &entity.User{ID: 1, Role: entity.RoleSubscriber})

	err := h.GetUser(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestIdentityHandler_Me_WithoutResolvedUser(t *testing.T) {
	h := &IdentityHandler{}

	c, _ := newTestContext(http.MethodGet, "/users/me")

	err := h.Me(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserView_NeverExposesPasswordHash(t *testing.T) {
	user := &entity.User{
		ID:           42,
		Email:        "user@example.com",
		PasswordHash: "$2a$12$secret",
		IsActive:     true,
		Role:         entity.RoleAuthor,
		CreatedAt:    time.Now(),
	}

	payload, err := json.Marshal(toUserView(user))

	require.NoError(t, err)
	assert.NotContains(t, string(payload), "secret")
	assert.Contains(t, string(payload), `"email":"user@example.com"`)
	assert.Contains(t, string(payload), `"role":"author"`)
}
