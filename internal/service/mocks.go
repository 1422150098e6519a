package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avdeevko/taskhub/internal/repository"
)

type MockTransactor struct {
	mock.Mock
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*repository.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *repository.NewProject) (*repository.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Project), args.Error(1)
}

func (m *MockProjectRepository) Search(ctx context.Context, query string) ([]*repository.Project, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Project), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) ListByProject(ctx context.Context, projectID int) ([]*repository.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByUser(ctx context.Context, userID int) ([]*repository.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *repository.NewTask) (*repository.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateStatus(ctx context.Context, taskID int, status string) (*repository.Task, error) {
	args := m.Called(ctx, taskID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Task), args.Error(1)
}

func (m *MockTaskRepository) Search(ctx context.Context, query string) ([]*repository.Task, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Task), args.Error(1)
}

func (m *MockTaskRepository) ListComments(ctx context.Context, taskIDs []int) ([]*repository.Comment, error) {
	args := m.Called(ctx, taskIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Comment), args.Error(1)
}

func (m *MockTaskRepository) ListAttachments(ctx context.Context, taskIDs []int) ([]*repository.Attachment, error) {
	args := m.Called(ctx, taskIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Attachment), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]*repository.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.User), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, userID int) (*repository.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, userIDs []int) ([]*repository.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.User), args.Error(1)
}

func (m *MockUserRepository) GetByCognitoID(ctx context.Context, cognitoID string) (*repository.User, error) {
	args := m.Called(ctx, cognitoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *repository.NewUser) (*repository.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.User), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query string) ([]*repository.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.User), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*repository.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Team), args.Error(1)
}
