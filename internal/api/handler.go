package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/avdeevko/taskhub/internal/config"
	"github.com/avdeevko/taskhub/internal/service"
)

type Handler struct {
	projects *service.ProjectService
	tasks    *service.TaskService
	users    *service.UserService
	teams    *service.TeamService
	search   *service.SearchService

	healthChecker HealthChecker

	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

func (h *Handler) WithHealthChecker(c HealthChecker) *Handler {
	h.healthChecker = c
	return h
}

func (h *Handler) WithProjectService(projects *service.ProjectService) *Handler {
	h.projects = projects
	return h
}

func (h *Handler) WithTaskService(tasks *service.TaskService) *Handler {
	h.tasks = tasks
	return h
}

func (h *Handler) WithUserService(users *service.UserService) *Handler {
	h.users = users
	return h
}

func (h *Handler) WithTeamService(teams *service.TeamService) *Handler {
	h.teams = teams
	return h
}

func (h *Handler) WithSearchService(search *service.SearchService) *Handler {
	h.search = search
	return h
}

func (h *Handler) RegisterRoutes(e *echo.Echo, cfg *config.Config) {
	e.Validator = NewValidator()
	e.HTTPErrorHandler = h.httpErrorHandler

	if cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.Use(middleware.RequestID())
	e.Use(ZapLoggerMiddleware(h.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
	}))
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(cfg.RateLimitMax) / cfg.RateLimitWindow.Seconds()),
			Burst:     cfg.RateLimitMax,
			ExpiresIn: cfg.RateLimitWindow,
		}),
	}))

	if h.healthChecker != nil {
		e.GET("/health", h.healthChecker.HealthCheck())
	}

	e.GET("/projects", h.ListProjects)
	e.POST("/projects", h.CreateProject)

	e.GET("/tasks", h.ListProjectTasks)
	e.POST("/tasks", h.CreateTask)
	e.PATCH("/tasks/:taskId", h.UpdateTaskStatus)
	e.PUT("/tasks/:taskId", h.UpdateTaskStatus)
	e.GET("/tasks/user/:userId", h.ListUserTasks)

	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.GET("/users/:cognitoId", h.GetUser)

	e.GET("/teams", h.ListTeams)

	e.GET("/search", h.Search)
}

func (h *Handler) respond(e echo.Context, statusCode int, data any, message string) error {
	return e.JSON(statusCode, NewResponse(statusCode, data, message))
}

func (h *Handler) decodeRequest(e echo.Context, req any) *service.Error {
	if err := e.Bind(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidInput, "invalid request body")
	}

	if err := e.Validate(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidInput, errors.Wrap(err, "request validation failed").Error())
	}
	return nil
}

// transportError is the single place deciding which status and message a
// failed request shows the client. Unknown codes are genericized to 500.
func (h *Handler) transportError(e echo.Context, err *service.Error) error {
	switch err.Code {
	case service.ErrorCodeInvalidInput:
		return h.respond(e, http.StatusBadRequest, nil, err.Message)
	case service.ErrorCodeNotFound:
		return h.respond(e, http.StatusNotFound, nil, err.Message)
	default:
		return h.respond(e, http.StatusInternalServerError, nil, "Internal Server Error")
	}
}

// httpErrorHandler renders framework-level failures (unknown route, rate
// limit, panic fallback) in the same envelope as handler errors.
func (h *Handler) httpErrorHandler(err error, e echo.Context) {
	if e.Response().Committed {
		return
	}

	statusCode := http.StatusInternalServerError
	message := "Internal Server Error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(statusCode)
		}
	}

	if respErr := h.respond(e, statusCode, nil, message); respErr != nil {
		h.logger.Error("failed to write error response", zap.Error(respErr))
	}
}
