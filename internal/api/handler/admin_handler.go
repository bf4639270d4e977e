package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/core/ports"
)

// AdminHandler serves the staff-only administration routes: forum members,
// staff accounts and dashboard counts.
type AdminHandler struct {
	memberService ports.MemberService
	staffService  ports.StaffService
	statsService  ports.StatsService
}

func NewAdminHandler(memberService ports.MemberService, staffService ports.StaffService, statsService ports.StatsService) *AdminHandler {
	return &AdminHandler{memberService: memberService, staffService: staffService, statsService: statsService}
}

// ListMembers returns every forum member.
//
// @Summary      List forum members
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Member
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users/forum [get]
func (h *AdminHandler) ListMembers(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	members, err := h.memberService.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// DeleteMember removes a forum member.
//
// @Summary      Delete a forum member
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/forum/{id} [delete]
func (h *AdminHandler) DeleteMember(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.memberService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}

// ListStaff returns every staff account.
//
// @Summary      List staff accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Staff
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/staff [get]
func (h *AdminHandler) ListStaff(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	staff, err := h.staffService.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, staff)
}

// CreateStaff adds a staff account.
//
// @Summary      Create a staff account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                  false  "Rejects repeated submissions"
// @Param        body             body      ports.CreateStaffInput  true   "Staff account"
// @Success      200              {object}  domain.Staff
// @Failure      403              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Router       /api/admin/staff [post]
func (h *AdminHandler) CreateStaff(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.CreateStaffInput
	if err := bind(c, &req); err != nil {
		return err
	}

	staff, err := h.staffService.Create(c.Request().Context(), p, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, staff)
}

// UpdateStaff edits a staff account.
//
// @Summary      Update a staff account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Staff ID"
// @Param        body  body      ports.UpdateStaffInput  true  "Fields to change"
// @Success      200   {object}  domain.Staff
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/staff/{id} [put]
func (h *AdminHandler) UpdateStaff(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.UpdateStaffInput
	if err := bind(c, &req); err != nil {
		return err
	}

	staff, err := h.staffService.Update(c.Request().Context(), p, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, staff)
}

// DeleteStaff removes a staff account. The bootstrap owner cannot be removed.
//
// @Summary      Delete a staff account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Staff ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/staff/{id} [delete]
func (h *AdminHandler) DeleteStaff(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.staffService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "staff member deleted"})
}

// Stats returns dashboard counts.
//
// @Summary      Dashboard counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Stats
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	stats, err := h.statsService.Get(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
