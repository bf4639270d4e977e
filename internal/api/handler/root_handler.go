package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root identifies the API.
//
// @Summary      API info
// @Tags         meta
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/ [get]
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "LuminosMC API"})
}
