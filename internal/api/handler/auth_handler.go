package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        any    `json:"user"`
}

// Register creates a new forum member.
//
// @Summary      Register a forum member
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RegisterInput  true  "Member credentials"
// @Success      200   {object}  domain.Member
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterInput
	if err := bind(c, &req); err != nil {
		return err
	}

	member, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Login authenticates a forum member.
//
// @Summary      Member login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.LoginInput  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginInput
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.authService.LoginMember(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{AccessToken: res.AccessToken, TokenType: res.TokenType, User: res.User})
}

// StaffLogin authenticates a staff account.
//
// @Summary      Staff login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.LoginInput  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/admin/login [post]
func (h *AuthHandler) StaffLogin(c echo.Context) error {
	var req ports.LoginInput
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.authService.LoginStaff(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{AccessToken: res.AccessToken, TokenType: res.TokenType, User: res.User})
}

// Me returns the authenticated account without its password.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p.Public())
}

// ChangePassword replaces the caller's password after checking the old one.
//
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.ChangePasswordInput  true  "Old and new password"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.ChangePasswordInput
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), p, req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}
