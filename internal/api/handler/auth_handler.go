package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worldroam/countries-api/internal/api/metrics"
	"github.com/worldroam/countries-api/internal/core/domain"
	"github.com/worldroam/countries-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new account and returns a bearer token for it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Failure      500   {object}  response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusCreated, response{
		Success: true,
		Token:   token,
		User:    publicUser(user),
	})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      401   {object}  response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, response{
		Success: true,
		Token:   token,
		User:    publicUser(user),
	})
}

// Me returns the authenticated user's public profile.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      401  {object}  response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response{
		Success: true,
		Data:    publicUser(user),
	})
}

// Logout acknowledges a logout. Tokens are stateless and not revocable;
// discarding the token client-side is the whole mechanism.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, response{
		Success: true,
		Data:    map[string]any{},
	})
}

func registerResult(err error) string {
	if errors.Is(err, domain.ErrUserExists) {
		return "duplicate_email"
	}
	return "error"
}

func loginResult(err error) string {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return "invalid_credentials"
	}
	return "error"
}
