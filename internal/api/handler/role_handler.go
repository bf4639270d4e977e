package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/core/ports"
)

type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// List returns every role.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}   domain.Role
// @Router       /api/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Create adds a role whose id is derived from its name.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Rejects repeated submissions"
// @Param        body             body      ports.CreateRoleInput  true   "Role"
// @Success      200              {object}  domain.Role
// @Failure      403              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.CreateRoleInput
	if err := bind(c, &req); err != nil {
		return err
	}

	role, err := h.roleService.Create(c.Request().Context(), p, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Update edits a non-system role.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Role ID"
// @Param        body  body      ports.RolePatch  true  "Fields to change"
// @Success      200   {object}  domain.Role
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.RolePatch
	if err := bind(c, &req); err != nil {
		return err
	}

	role, err := h.roleService.Update(c.Request().Context(), p, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Delete removes a non-system role that no staff account holds.
//
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.roleService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role deleted"})
}
