package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avdeevko/taskhub/internal/repository"
)

func newSearchService(tasks *MockTaskRepository, projects *MockProjectRepository, users *MockUserRepository) *SearchService {
	return NewSearchService().WithTaskRepo(tasks).WithProjectRepo(projects).WithUserRepo(users)
}

func TestSearchService_Search(t *testing.T) {
	t.Run("blank query is rejected", func(t *testing.T) {
		service := newSearchService(new(MockTaskRepository), new(MockProjectRepository), new(MockUserRepository))

		for _, query := range []string{"", "   ", "\t"} {
			got, err := service.Search(context.Background(), query)

			assert.NotNil(t, err)
			assert.Equal(t, ErrorCodeInvalidInput, err.Code)
			assert.Nil(t, got)
		}
	})

	t.Run("query is trimmed before matching", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockProjectRepo := new(MockProjectRepository)
		mockUserRepo := new(MockUserRepository)

		mockTaskRepo.On("Search", mock.Anything, "foo").Return([]*repository.Task{
			{ID: 1, Title: "foo task", ProjectID: 1, AuthorUserID: 1},
		}, nil)
		mockProjectRepo.On("Search", mock.Anything, "foo").Return([]*repository.Project{}, nil)
		mockUserRepo.On("Search", mock.Anything, "foo").Return([]*repository.User{}, nil)

		service := newSearchService(mockTaskRepo, mockProjectRepo, mockUserRepo)

		got, err := service.Search(context.Background(), "  foo  ")

		assert.Nil(t, err)
		assert.Len(t, got.Tasks, 1)
		assert.NotNil(t, got.Projects)
		assert.NotNil(t, got.Users)
		assert.Len(t, got.Projects, 0)
		assert.Len(t, got.Users, 0)

		mockTaskRepo.AssertExpectations(t)
		mockProjectRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("one failed lookup fails the whole search", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockProjectRepo := new(MockProjectRepository)
		mockUserRepo := new(MockUserRepository)

		mockTaskRepo.On("Search", mock.Anything, "foo").Return([]*repository.Task{}, nil)
		mockProjectRepo.On("Search", mock.Anything, "foo").Return(nil, errors.New("db error"))
		mockUserRepo.On("Search", mock.Anything, "foo").Return([]*repository.User{}, nil)

		service := newSearchService(mockTaskRepo, mockProjectRepo, mockUserRepo)

		got, err := service.Search(context.Background(), "foo")

		assert.NotNil(t, err)
		assert.Equal(t, ErrorCodeUnspecified, err.Code)
		assert.Nil(t, got)
	})
}
