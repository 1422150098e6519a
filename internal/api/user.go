package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/internal/service"
	"github.com/avdeevko/taskhub/pkg/logger"
)

func (h *Handler) ListUsers(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	l.Info("listing users")

	users, err := h.users.ListUsers(e.Request().Context())
	if err != nil {
		l.Error("failed to list users", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusOK, users, "Users retrieved successfully")
}

// GetUser looks a user up by the external identity key. A missing user is a
// 200 with null data, not a 404.
func (h *Handler) GetUser(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	cognitoID := e.Param("cognitoId")
	if cognitoID == "" {
		err := service.NewError(service.ErrorCodeInvalidInput, "Valid cognitoId is required")
		l.Error("missing cognitoId", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("getting user", zap.String("cognito_id", cognitoID))

	user, err := h.users.GetUserByCognitoID(e.Request().Context(), cognitoID)
	if err != nil {
		l.Error("failed to get user", zap.String("cognito_id", cognitoID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	if user == nil {
		return h.respond(e, http.StatusOK, nil, "User retrieved successfully")
	}

	return h.respond(e, http.StatusOK, user, "User retrieved successfully")
}

func (h *Handler) CreateUser(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Username          string `json:"username" validate:"required"`
		CognitoID         string `json:"cognitoId" validate:"required"`
		ProfilePictureURL string `json:"profilePictureUrl"`
		TeamID            int    `json:"teamId"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("creating user", zap.String("username", req.Username), zap.String("cognito_id", req.CognitoID))

	user, err := h.users.CreateUser(e.Request().Context(), &model.User{
		Username:          req.Username,
		CognitoID:         req.CognitoID,
		ProfilePictureURL: req.ProfilePictureURL,
		TeamID:            req.TeamID,
	})
	if err != nil {
		l.Error("failed to create user", zap.String("cognito_id", req.CognitoID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return h.respond(e, http.StatusCreated, user, "User created successfully")
}
