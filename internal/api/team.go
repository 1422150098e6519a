package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/pkg/logger"
)

func (h *Handler) ListTeams(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	l.Info("listing teams")

	teams, err := h.teams.ListTeams(e.Request().Context())
	if err != nil {
		l.Error("failed to list teams", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusOK, teams, "Teams retrieved successfully")
}
