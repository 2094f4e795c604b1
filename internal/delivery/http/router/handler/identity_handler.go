// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"newswire/internal/delivery/http/middleware"
	"newswire/internal/delivery/http/response"
	"newswire/internal/domain/entity"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdentityHandler holds dependencies for identity-related handlers.
type IdentityHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler, injected by Fx.
func NewIdentityHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type updateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	IsActive *bool   `json:"is_active,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// userView is the identity shape returned to clients. The password hash never
// leaves the service.
type userView struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type authView struct {
	User   userView          `json:"user"`
	Tokens usecase.TokenPair `json:"tokens"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:         user.ID,
		Email:      user.Email,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		Role:       user.Role.String(),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

// Register handles self-registration. The role is always subscriber here;
// elevated registrations go through the superuser routes.
func (h *IdentityHandler) Register(c echo.Context) error {
	return h.register(c, entity.RoleSubscriber)
}

// RegisterAuthor handles superuser-gated author registration.
func (h *IdentityHandler) RegisterAuthor(c echo.Context) error {
	return h.register(c, entity.RoleAuthor)
}

// RegisterSuperuser handles superuser-gated superuser registration.
func (h *IdentityHandler) RegisterSuperuser(c echo.Context) error {
	return h.register(c, entity.RoleSuperuser)
}

func (h *IdentityHandler) register(c echo.Context, role entity.Role) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := authView{User: toUserView(output.User), Tokens: output.Tokens}

	return response.Success(c, http.StatusCreated, view, "User registered successfully")
}

// Login handles the login request.
func (h *IdentityHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := authView{User: toUserView(output.User), Tokens: output.Tokens}

	return response.Success(c, http.StatusOK, view, "Login successful")
}

// Refresh handles the access token refresh request.
func (h *IdentityHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RefreshAccessToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the logout request.
func (h *IdentityHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// ChangePassword rotates the authenticated user's password.
func (h *IdentityHandler) ChangePassword(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:      actor.ID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// Me returns the authenticated user's own identity.
func (h *IdentityHandler) Me(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, toUserView(actor), "")
}

// GetUser returns one identity by ID. The same ownership rule as UpdateUser
// applies, so a subscriber cannot walk the ID space and harvest emails.
func (h *IdentityHandler) GetUser(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if actor.ID != id && !entity.IsSuperuser(actor.Role) {
		return domainerrors.ErrForbidden.WrapMessage("cannot read another user")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// ListUsers returns every identity.
func (h *IdentityHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// UpdateUser applies a partial identity update. Users may edit themselves;
// superusers may edit anyone. Role changes are superuser only.
func (h *IdentityHandler) UpdateUser(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if actor.ID != id && !entity.IsSuperuser(actor.Role) {
		return domainerrors.ErrForbidden.WrapMessage("cannot edit another user")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateUserInput{Email: req.Email, IsActive: req.IsActive}
	if req.Role != nil {
		if !entity.IsSuperuser(actor.Role) {
			return domainerrors.ErrForbidden.WrapMessage("role changes require superuser access")
		}
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "User updated successfully")
}

// DeleteUser removes an identity.
func (h *IdentityHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// pathID parses the :id path parameter shared by the resource handlers.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("id must be an integer")
	}

	return id, nil
}
