package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/internal/repository"
	"github.com/avdeevko/taskhub/pkg/logger"
)

type SearchService struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	users    repository.UserRepository
}

func NewSearchService() *SearchService {
	return &SearchService{}
}

func (s *SearchService) WithTaskRepo(r repository.TaskRepository) *SearchService {
	s.tasks = r
	return s
}

func (s *SearchService) WithProjectRepo(r repository.ProjectRepository) *SearchService {
	s.projects = r
	return s
}

func (s *SearchService) WithUserRepo(r repository.UserRepository) *SearchService {
	s.users = r
	return s
}

// Search runs the three entity lookups concurrently. There is no partial
// result: if any lookup fails the whole search fails.
func (s *SearchService) Search(ctx context.Context, query string) (*model.SearchResults, *Error) {
	l := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		l.Warn("empty search query")
		return nil, NewError(ErrorCodeInvalidInput, "Search query is required")
	}

	var (
		repoTasks    []*repository.Task
		repoProjects []*repository.Project
		repoUsers    []*repository.User
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		repoTasks, err = s.tasks.Search(gCtx, query)
		return err
	})
	g.Go(func() error {
		var err error
		repoProjects, err = s.projects.Search(gCtx, query)
		return err
	})
	g.Go(func() error {
		var err error
		repoUsers, err = s.users.Search(gCtx, query)
		return err
	})

	if err := g.Wait(); err != nil {
		l.Error("search failed", zap.String("query", query), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "search failed")
	}

	results := &model.SearchResults{
		Tasks:    make([]*model.Task, 0, len(repoTasks)),
		Projects: make([]*model.Project, 0, len(repoProjects)),
		Users:    make([]*model.User, 0, len(repoUsers)),
	}
	for _, t := range repoTasks {
		results.Tasks = append(results.Tasks, taskToModel(t))
	}
	for _, p := range repoProjects {
		results.Projects = append(results.Projects, projectToModel(p))
	}
	for _, u := range repoUsers {
		results.Users = append(results.Users, userToModel(u))
	}

	l.Debug("search completed",
		zap.String("query", query),
		zap.Int("tasks", len(results.Tasks)),
		zap.Int("projects", len(results.Projects)),
		zap.Int("users", len(results.Users)))

	return results, nil
}
