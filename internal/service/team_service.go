package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/internal/db"
	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/internal/repository"
	"github.com/avdeevko/taskhub/pkg/logger"
)

type TeamService struct {
	tx db.Transactor

	teams repository.TeamRepository
	users repository.UserRepository
}

func NewTeamService(tx db.Transactor) *TeamService {
	return &TeamService{tx: tx}
}

func (s *TeamService) WithTeamRepo(r repository.TeamRepository) *TeamService {
	s.teams = r
	return s
}

func (s *TeamService) WithUserRepo(r repository.UserRepository) *TeamService {
	s.users = r
	return s
}

// ListTeams returns all teams with the product owner and project manager
// usernames resolved from the referenced users. The whole read runs in one
// transaction so the usernames match the team rows. A dangling reference
// leaves the username nil without failing the request.
func (s *TeamService) ListTeams(ctx context.Context) ([]*model.Team, *Error) {
	l := logger.FromContext(ctx)

	teams := make([]*model.Team, 0)

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		repoTeams, err := s.teams.List(txCtx)
		if err != nil {
			l.Error("failed to list teams", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to list teams")
		}

		for _, t := range repoTeams {
			team := &model.Team{
				ID:                   t.ID,
				TeamName:             t.TeamName,
				ProductOwnerUserID:   t.ProductOwnerUserID,
				ProjectManagerUserID: t.ProjectManagerUserID,
			}

			team.ProductOwnerUsername, err = s.resolveUsername(txCtx, t.ProductOwnerUserID)
			if err != nil {
				l.Error("failed to resolve product owner", zap.Int("team_id", t.ID), zap.Error(err))
				return NewError(ErrorCodeUnspecified, "failed to list teams")
			}

			team.ProjectManagerUsername, err = s.resolveUsername(txCtx, t.ProjectManagerUserID)
			if err != nil {
				l.Error("failed to resolve project manager", zap.Int("team_id", t.ID), zap.Error(err))
				return NewError(ErrorCodeUnspecified, "failed to list teams")
			}

			teams = append(teams, team)
		}

		l.Debug("teams listed", zap.Int("count", len(teams)))

		return nil
	})

	var svcErr *Error
	if errors.As(err, &svcErr) {
		return nil, svcErr
	}
	if err != nil {
		l.Error("teams transaction failed", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list teams")
	}

	return teams, nil
}

func (s *TeamService) resolveUsername(ctx context.Context, userID *int) (*string, error) {
	if userID == nil {
		return nil, nil
	}

	user, err := s.users.Get(ctx, *userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user.Username, nil
}
