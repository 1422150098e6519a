package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/pkg/logger"
)

func (h *Handler) ListProjectTasks(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	projectID, err := intQueryParam(e, "projectId")
	if err != nil {
		l.Error("invalid projectId", zap.String("project_id", e.QueryParam("projectId")), zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("listing project tasks", zap.Int("project_id", projectID))

	tasks, err := h.tasks.ListProjectTasks(e.Request().Context(), projectID)
	if err != nil {
		l.Error("failed to list project tasks", zap.Int("project_id", projectID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusOK, tasks, "Tasks fetched successfully")
}

func (h *Handler) CreateTask(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Title          string   `json:"title" validate:"required"`
		Description    *string  `json:"description"`
		Status         *string  `json:"status"`
		Priority       *string  `json:"priority"`
		Tags           []string `json:"tags"`
		StartDate      string   `json:"startDate"`
		DueDate        string   `json:"dueDate"`
		Points         *int     `json:"points"`
		ProjectID      int      `json:"projectId" validate:"required"`
		AuthorUserID   int      `json:"authorUserId"`
		AssignedUserID *int     `json:"assignedUserId"`
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

	dueDate, err := parseTimestamp("dueDate", req.DueDate)
	if err != nil {
		l.Error("invalid due date", zap.String("due_date", req.DueDate), zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("creating task",
		zap.String("title", req.Title),
		zap.Int("project_id", req.ProjectID))

	task, err := h.tasks.CreateTask(e.Request().Context(), &model.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		Tags:           req.Tags,
		StartDate:      startDate,
		DueDate:        dueDate,
		Points:         req.Points,
		ProjectID:      req.ProjectID,
		AuthorUserID:   req.AuthorUserID,
		AssignedUserID: req.AssignedUserID,
	})
	if err != nil {
		l.Error("failed to create task",
			zap.String("title", req.Title),
			zap.Int("project_id", req.ProjectID),
			zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusCreated, task, "Task created successfully")
}

func (h *Handler) UpdateTaskStatus(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	taskID, err := intPathParam(e, "taskId")
	if err != nil {
		l.Error("invalid taskId", zap.String("task_id", e.Param("taskId")), zap.Any("error", err))
		return h.transportError(e, err)
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Int("task_id", taskID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("updating task status", zap.Int("task_id", taskID), zap.String("status", req.Status))

	task, err := h.tasks.UpdateTaskStatus(e.Request().Context(), taskID, req.Status)
	if err != nil {
		l.Error("failed to update task status", zap.Int("task_id", taskID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusOK, task, "Task status updated")
}

func (h *Handler) ListUserTasks(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	userID, err := intPathParam(e, "userId")
	if err != nil {
		l.Error("invalid userId", zap.String("user_id", e.Param("userId")), zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("listing user tasks", zap.Int("user_id", userID))

	tasks, err := h.tasks.ListUserTasks(e.Request().Context(), userID)
	if err != nil {
		l.Error("failed to list user tasks", zap.Int("user_id", userID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusOK, tasks, "User's tasks retrieved successfully")
}
