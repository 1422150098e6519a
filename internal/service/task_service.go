package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/internal/repository"
	"github.com/avdeevko/taskhub/pkg/logger"
)

type TaskService struct {
	tasks repository.TaskRepository
	users repository.UserRepository
}

func NewTaskService() *TaskService {
	return &TaskService{}
}

func (s *TaskService) WithTaskRepo(r repository.TaskRepository) *TaskService {
	s.tasks = r
	return s
}

func (s *TaskService) WithUserRepo(r repository.UserRepository) *TaskService {
	s.users = r
	return s
}

// ListProjectTasks returns the tasks of a project with author, assignee,
// comments and attachments resolved.
func (s *TaskService) ListProjectTasks(ctx context.Context, projectID int) ([]*model.Task, *Error) {
	l := logger.FromContext(ctx)

	repoTasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		l.Error("failed to list project tasks", zap.Int("project_id", projectID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list tasks")
	}

	tasks, svcErr := s.withUsers(ctx, repoTasks)
	if svcErr != nil {
		return nil, svcErr
	}

	taskIDs := make([]int, 0, len(repoTasks))
	byID := make(map[int]*model.Task, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
		byID[t.ID] = t
		t.Comments = make([]*model.Comment, 0)
		t.Attachments = make([]*model.Attachment, 0)
	}

	comments, err := s.tasks.ListComments(ctx, taskIDs)
	if err != nil {
		l.Error("failed to list task comments", zap.Int("project_id", projectID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list tasks")
	}
	for _, c := range comments {
		if t, ok := byID[c.TaskID]; ok {
			t.Comments = append(t.Comments, &model.Comment{
				ID:     c.ID,
				Text:   c.Text,
				TaskID: c.TaskID,
				UserID: c.UserID,
			})
		}
	}

	attachments, err := s.tasks.ListAttachments(ctx, taskIDs)
	if err != nil {
		l.Error("failed to list task attachments", zap.Int("project_id", projectID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list tasks")
	}
	for _, a := range attachments {
		if t, ok := byID[a.TaskID]; ok {
			t.Attachments = append(t.Attachments, &model.Attachment{
				ID:           a.ID,
				FileURL:      a.FileURL,
				FileName:     a.FileName,
				TaskID:       a.TaskID,
				UploadedByID: a.UploadedByID,
			})
		}
	}

	l.Debug("project tasks listed", zap.Int("project_id", projectID), zap.Int("count", len(tasks)))

	return tasks, nil
}

// ListUserTasks returns tasks the user authored or is assigned to, with
// author and assignee resolved.
func (s *TaskService) ListUserTasks(ctx context.Context, userID int) ([]*model.Task, *Error) {
	l := logger.FromContext(ctx)

	repoTasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		l.Error("failed to list user tasks", zap.Int("user_id", userID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list tasks")
	}

	tasks, svcErr := s.withUsers(ctx, repoTasks)
	if svcErr != nil {
		return nil, svcErr
	}

	l.Debug("user tasks listed", zap.Int("user_id", userID), zap.Int("count", len(tasks)))

	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, task *model.Task) (*model.Task, *Error) {
	l := logger.FromContext(ctx)

	created, err := s.tasks.Create(ctx, &repository.NewTask{
		Title:          task.Title,
		Description:    task.Description,
		Status:         task.Status,
		Priority:       task.Priority,
		Tags:           tagsToRepo(task.Tags),
		StartDate:      task.StartDate,
		DueDate:        task.DueDate,
		Points:         task.Points,
		ProjectID:      task.ProjectID,
		AuthorUserID:   task.AuthorUserID,
		AssignedUserID: task.AssignedUserID,
	})
	if err != nil {
		l.Error("failed to create task",
			zap.String("title", task.Title),
			zap.Int("project_id", task.ProjectID),
			zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create task")
	}

	l.Info("task created", zap.Int("task_id", created.ID), zap.Int("project_id", created.ProjectID))

	return taskToModel(created), nil
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, taskID int, status string) (*model.Task, *Error) {
	l := logger.FromContext(ctx)

	updated, err := s.tasks.UpdateStatus(ctx, taskID, status)
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("task not found", zap.Int("task_id", taskID))
		return nil, NewError(ErrorCodeNotFound, "task not found")
	}
	if err != nil {
		l.Error("failed to update task status", zap.Int("task_id", taskID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to update task status")
	}

	l.Info("task status updated", zap.Int("task_id", taskID), zap.String("status", status))

	return taskToModel(updated), nil
}

// withUsers converts repository tasks to models with author and assignee
// attached via one batched user lookup.
func (s *TaskService) withUsers(ctx context.Context, repoTasks []*repository.Task) ([]*model.Task, *Error) {
	l := logger.FromContext(ctx)

	userIDs := make([]int, 0, len(repoTasks)*2)
	seen := make(map[int]bool)
	for _, t := range repoTasks {
		if !seen[t.AuthorUserID] {
			seen[t.AuthorUserID] = true
			userIDs = append(userIDs, t.AuthorUserID)
		}
		if t.AssignedUserID != nil && !seen[*t.AssignedUserID] {
			seen[*t.AssignedUserID] = true
			userIDs = append(userIDs, *t.AssignedUserID)
		}
	}

	users, err := s.users.GetByIDs(ctx, userIDs)
	if err != nil {
		l.Error("failed to resolve task users", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list tasks")
	}

	byID := make(map[int]*model.User, len(users))
	for _, u := range users {
		byID[u.UserID] = userToModel(u)
	}

	tasks := make([]*model.Task, 0, len(repoTasks))
	for _, t := range repoTasks {
		task := taskToModel(t)
		task.Author = byID[t.AuthorUserID]
		if t.AssignedUserID != nil {
			task.Assignee = byID[*t.AssignedUserID]
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func taskToModel(t *repository.Task) *model.Task {
	return &model.Task{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		Tags:           tagsToModel(t.Tags),
		StartDate:      t.StartDate,
		DueDate:        t.DueDate,
		Points:         t.Points,
		ProjectID:      t.ProjectID,
		AuthorUserID:   t.AuthorUserID,
		AssignedUserID: t.AssignedUserID,
	}
}

// Tags are stored as one comma-joined text column.
func tagsToModel(tags *string) []string {
	if tags == nil || *tags == "" {
		return nil
	}
	return strings.Split(*tags, ",")
}

func tagsToRepo(tags []string) *string {
	if len(tags) == 0 {
		return nil
	}
	joined := strings.Join(tags, ",")
	return &joined
}
