package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/pkg/logger"
)

func (h *Handler) Search(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	query := e.QueryParam("query")

	l.Info("searching", zap.String("query", query))

	results, err := h.search.Search(e.Request().Context(), query)
	if err != nil {
		l.Error("search failed", zap.String("query", query), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusOK, results, "Search results fetched")
}
