package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/pkg/logger"
)

func (h *Handler) ListProjects(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	l.Info("listing projects")

	projects, err := h.projects.ListProjects(e.Request().Context())
	if err != nil {
		l.Error("failed to list projects", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusOK, projects, "Projects retrieved successfully")
}

func (h *Handler) CreateProject(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Name        string  `json:"name" validate:"required"`
		Description *string `json:"description"`
		StartDate   string  `json:"startDate"`
		EndDate     string  `json:"endDate"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	startDate, err := parseTimestamp("startDate", req.StartDate)
	if err != nil {
		l.Error("invalid start date", zap.String("start_date", req.StartDate), zap.Any("error", err))
		return h.transportError(e, err)
	}

	endDate, err := parseTimestamp("endDate", req.EndDate)
	if err != nil {
		l.Error("invalid end date", zap.String("end_date", req.EndDate), zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("creating project", zap.String("name", req.Name))

	project, err := h.projects.CreateProject(e.Request().Context(), &model.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		l.Error("failed to create project", zap.String("name", req.Name), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusCreated, project, "Project created successfully")
}
