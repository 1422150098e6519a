package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/internal/repository"
	"github.com/avdeevko/taskhub/pkg/logger"
)

const (
	defaultProfilePicture = "i1.jpg"
	defaultTeamID         = 1
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService() *UserService {
	return &UserService{}
}

func (s *UserService) WithUserRepo(r repository.UserRepository) *UserService {
	s.users = r
	return s
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, *Error) {
	l := logger.FromContext(ctx)

	repoUsers, err := s.users.List(ctx)
	if err != nil {
		l.Error("failed to list users", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list users")
	}

	users := make([]*model.User, 0, len(repoUsers))
	for _, u := range repoUsers {
		users = append(users, userToModel(u))
	}

	l.Debug("users listed", zap.Int("count", len(users)))

	return users, nil
}

// GetUserByCognitoID looks a user up by the identity provider key. A missing
// user is not an error: the caller gets a nil user and renders a null payload.
func (s *UserService) GetUserByCognitoID(ctx context.Context, cognitoID string) (*model.User, *Error) {
	l := logger.FromContext(ctx)

	user, err := s.users.GetByCognitoID(ctx, cognitoID)
	if errors.Is(err, repository.ErrNotFound) {
		l.Info("user not found", zap.String("cognito_id", cognitoID))
		return nil, nil
	}
	if err != nil {
		l.Error("failed to get user", zap.String("cognito_id", cognitoID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get user")
	}

	return userToModel(user), nil
}

func (s *UserService) CreateUser(ctx context.Context, user *model.User) (*model.User, *Error) {
	l := logger.FromContext(ctx)

	if user.ProfilePictureURL == "" {
		user.ProfilePictureURL = defaultProfilePicture
	}
	if user.TeamID == 0 {
		user.TeamID = defaultTeamID
	}

	created, err := s.users.Create(ctx, &repository.NewUser{
		Username:          user.Username,
		CognitoID:         user.CognitoID,
		ProfilePictureURL: user.ProfilePictureURL,
		TeamID:            user.TeamID,
	})
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("user already exists", zap.String("cognito_id", user.CognitoID))
		return nil, NewError(ErrorCodeInvalidInput, "user with this cognitoId already exists")
	}
	if err != nil {
		l.Error("failed to create user", zap.String("cognito_id", user.CognitoID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create user")
	}

	l.Info("user created", zap.Int("user_id", created.UserID), zap.String("cognito_id", created.CognitoID))

	return userToModel(created), nil
}

func userToModel(u *repository.User) *model.User {
	return &model.User{
		UserID:            u.UserID,
		CognitoID:         u.CognitoID,
		Username:          u.Username,
		ProfilePictureURL: u.ProfilePictureURL,
		TeamID:            u.TeamID,
	}
}
