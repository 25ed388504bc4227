package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/teuslab/publishing-api/internal/api/metrics"
	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

// AdminHandler handles HTTP requests for admin account operations.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login handles POST /v1/admin/login.
//
// @Summary      Sign in admin account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.RoleAdmin), "failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues(string(domain.RoleAdmin), "success").Inc()

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Create handles POST /v1/admin.
//
// @Summary      Register a new admin account (must be authenticated as admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "Admin account details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/admin [post]
func (h *AdminHandler) Create(c echo.Context) error {
	caller, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), caller, req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	metrics.AccountsCreatedTotal.WithLabelValues(string(domain.RoleAdmin)).Inc()

	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// Update handles PUT /v1/admin.
//
// @Summary      Update admin account (must be authenticated as admin)
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        body  body      updateAccountRequest  true  "New account details"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin [put]
func (h *AdminHandler) Update(c echo.Context) error {
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

// List handles GET /v1/admin.
//
// @Summary      List admin accounts (must be authenticated as admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  false  "Substring email filter"
// @Success      200    {array}   domain.Admin
// @Failure      401    {object}  map[string]string
// @Router       /v1/admin [get]
func (h *AdminHandler) List(c echo.Context) error {
	caller, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	admins, err := h.service.List(c.Request().Context(), caller, c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// DeleteUser handles DELETE /v1/admin/delete-user/:userId.
//
// @Summary      Delete a user account by id (must be authenticated as admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        userId  path  string  true  "User id"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/delete-user/{userId} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	caller, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), caller, c.Param("userId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUsers handles GET /v1/admin/get-users.
//
// @Summary      List user accounts, paginated (must be authenticated as admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page          query     int     false  "Page number (1-based)"
// @Param        usersPerPage  query     int     false  "Page size"
// @Param        email         query     string  false  "Substring email filter"
// @Success      200   {object}  ports.UserPage
// @Failure      401   {object}  map[string]string
// @Router       /v1/admin/get-users [get]
func (h *AdminHandler) GetUsers(c echo.Context) error {
	caller, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("usersPerPage"))

	result, err := h.service.ListUsers(c.Request().Context(), caller, page, perPage, c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
