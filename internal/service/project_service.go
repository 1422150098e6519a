package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/internal/repository"
	"github.com/avdeevko/taskhub/pkg/logger"
)

type ProjectService struct {
	projects repository.ProjectRepository
}

func NewProjectService() *ProjectService {
	return &ProjectService{}
}

func (s *ProjectService) WithProjectRepo(r repository.ProjectRepository) *ProjectService {
	s.projects = r
	return s
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]*model.Project, *Error) {
	l := logger.FromContext(ctx)

	repoProjects, err := s.projects.List(ctx)
	if err != nil {
		l.Error("failed to list projects", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list projects")
	}

	projects := make([]*model.Project, 0, len(repoProjects))
	for _, p := range repoProjects {
		projects = append(projects, projectToModel(p))
	}

	l.Debug("projects listed", zap.Int("count", len(projects)))

	return projects, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, project *model.Project) (*model.Project, *Error) {
	l := logger.FromContext(ctx)

	created, err := s.projects.Create(ctx, &repository.NewProject{
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
	})
	if err != nil {
		l.Error("failed to create project", zap.String("name", project.Name), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create project")
	}

	l.Info("project created", zap.Int("project_id", created.ID))

	return projectToModel(created), nil
}

func projectToModel(p *repository.Project) *model.Project {
	return &model.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}
