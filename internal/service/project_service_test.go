package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/internal/repository"
)

func TestProjectService_ListProjects(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockProjectRepository)
		expectedError bool
		errorCode     ErrorCode
		expectedCount int
	}{
		{
			name: "success",
			setupMocks: func(pr *MockProjectRepository) {
				pr.On("List", mock.Anything).Return([]*repository.Project{
					{ID: 1, Name: "Alpha"},
					{ID: 2, Name: "Beta"},
				}, nil)
			},
			expectedCount: 2,
		},
		{
			name: "empty result is not an error",
			setupMocks: func(pr *MockProjectRepository) {
				pr.On("List", mock.Anything).Return([]*repository.Project{}, nil)
			},
			expectedCount: 0,
		},
		{
			name: "repository failure",
			setupMocks: func(pr *MockProjectRepository) {
				pr.On("List", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProjectRepo := new(MockProjectRepository)
			tt.setupMocks(mockProjectRepo)

			service := NewProjectService().WithProjectRepo(mockProjectRepo)

			got, err := service.ListProjects(context.Background())

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
				assert.Nil(t, got)
			} else {
				assert.Nil(t, err)
				assert.Len(t, got, tt.expectedCount)
			}

			mockProjectRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_CreateProject(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	description := "rollout"

	t.Run("success", func(t *testing.T) {
		mockProjectRepo := new(MockProjectRepository)
		mockProjectRepo.On("Create", mock.Anything, &repository.NewProject{
			Name:        "Alpha",
			Description: &description,
			StartDate:   &start,
		}).Return(&repository.Project{
			ID:          7,
			Name:        "Alpha",
			Description: &description,
			StartDate:   &start,
		}, nil)

		service := NewProjectService().WithProjectRepo(mockProjectRepo)

		got, err := service.CreateProject(context.Background(), &model.Project{
			Name:        "Alpha",
			Description: &description,
			StartDate:   &start,
		})

		assert.Nil(t, err)
		assert.Equal(t, 7, got.ID)
		assert.Equal(t, "Alpha", got.Name)
		mockProjectRepo.AssertExpectations(t)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockProjectRepo := new(MockProjectRepository)
		mockProjectRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

		service := NewProjectService().WithProjectRepo(mockProjectRepo)

		got, err := service.CreateProject(context.Background(), &model.Project{Name: "Alpha"})

		assert.NotNil(t, err)
		assert.Equal(t, ErrorCodeUnspecified, err.Code)
		assert.Nil(t, got)
		mockProjectRepo.AssertExpectations(t)
	})
}
