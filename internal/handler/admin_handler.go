package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/s5redllms/NoteBuddy/internal/service"
)

// AdminHandler handles cross-user administration endpoints. The router's
// admin group runs the role guard before any of these, re-checking the
// persisted role rather than the session claim.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// UpdateRoleRequest represents a role assignment.
type UpdateRoleRequest struct {
	RoleID uint `json:"role_id" validate:"required"`
}

// ListUsers godoc
// @Summary List all users with their roles
// @Tags admin
// @Produce json
// @Success 200 {array} model.UserWithRole
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRole godoc
// @Summary Assign a role to a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateRoleRequest true "Role assignment"
// @Success 200 {object} successResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "role ID is required")
	}

	if err := h.adminService.SetRole(c.Request().Context(), id, req.RoleID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, success())
}

// DeleteUser godoc
// @Summary Delete a user and everything it owns
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} successResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.adminService.DeleteUser(c.Request().Context(), session.UserID, id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, success())
}

// ListRoles godoc
// @Summary List the available roles
// @Tags admin
// @Produce json
// @Success 200 {array} model.Role
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/roles [get]
func (h *AdminHandler) ListRoles(c echo.Context) error {
	roles, err := h.adminService.ListRoles(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, roles)
}

// Stats godoc
// @Summary Aggregate resource counts across all users
// @Tags admin
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.GetStats(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
