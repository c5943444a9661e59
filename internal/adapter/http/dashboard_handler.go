package http

import (
	"net/http"

	dashboarduc "zoo-procure-hub/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct{ uc *dashboarduc.Usecase }

func NewDashboardHandler(uc *dashboarduc.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Summary(c echo.Context) error {
	s, err := h.uc.Summary(c.Request().Context(), actor(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", s)
}
