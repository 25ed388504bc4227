package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teuslab/publishing-api/internal/api/metrics"
	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user account operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v1/user. Signup is open.
//
// @Summary      Register a new user account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      createAccountRequest  true  "User account details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	metrics.AccountsCreatedTotal.WithLabelValues(string(domain.RoleUser)).Inc()

	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// Login handles POST /v1/user/login.
//
// @Summary      Sign in user account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleUser), "failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues(string(domain.RoleUser), "success").Inc()

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Update handles PUT /v1/user.
//
// @Summary      Update user's account (must be authenticated as user)
// @Tags         user
// @Accept       json
// @Security     BearerAuth
// @Param        body  body      updateAccountRequest  true  "New account details"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/user [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), caller, req.Username, req.Email, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/user. The caller deletes their own account.
//
// @Summary      Delete user's account (must be authenticated as user)
// @Tags         user
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/user [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
