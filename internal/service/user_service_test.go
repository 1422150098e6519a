package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avdeevko/taskhub/internal/model"
	"github.com/avdeevko/taskhub/internal/repository"
)

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		user          *model.User
		setupMocks    func(*MockUserRepository)
		expectedError bool
		errorCode     ErrorCode
		expectedUser  *model.User
	}{
		{
			name: "defaults applied for picture and team",
			user: &model.User{Username: "ana", CognitoID: "cog-1"},
			setupMocks: func(ur *MockUserRepository) {
				ur.On("Create", mock.Anything, &repository.NewUser{
					Username:          "ana",
					CognitoID:         "cog-1",
					ProfilePictureURL: "i1.jpg",
					TeamID:            1,
				}).Return(&repository.User{
					UserID:            4,
					CognitoID:         "cog-1",
					Username:          "ana",
					ProfilePictureURL: "i1.jpg",
					TeamID:            1,
				}, nil)
			},
			expectedUser: &model.User{
				UserID:            4,
				CognitoID:         "cog-1",
				Username:          "ana",
				ProfilePictureURL: "i1.jpg",
				TeamID:            1,
			},
		},
		{
			name: "explicit values kept",
			user: &model.User{Username: "bo", CognitoID: "cog-2", ProfilePictureURL: "p5.jpg", TeamID: 3},
			setupMocks: func(ur *MockUserRepository) {
				ur.On("Create", mock.Anything, &repository.NewUser{
					Username:          "bo",
					CognitoID:         "cog-2",
					ProfilePictureURL: "p5.jpg",
					TeamID:            3,
				}).Return(&repository.User{
					UserID:            5,
					CognitoID:         "cog-2",
					Username:          "bo",
					ProfilePictureURL: "p5.jpg",
					TeamID:            3,
				}, nil)
			},
			expectedUser: &model.User{
				UserID:            5,
				CognitoID:         "cog-2",
				Username:          "bo",
				ProfilePictureURL: "p5.jpg",
				TeamID:            3,
			},
		},
		{
			name: "duplicate cognito id",
			user: &model.User{Username: "ana", CognitoID: "cog-1"},
			setupMocks: func(ur *MockUserRepository) {
				ur.On("Create", mock.Anything, mock.Anything).Return(nil, repository.ErrAlreadyExists)
			},
			expectedError: true,
			errorCode:     ErrorCodeInvalidInput,
		},
		{
			name: "repository failure",
			user: &model.User{Username: "ana", CognitoID: "cog-1"},
			setupMocks: func(ur *MockUserRepository) {
				ur.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			tt.setupMocks(mockUserRepo)

			service := NewUserService().WithUserRepo(mockUserRepo)

			got, err := service.CreateUser(context.Background(), tt.user)

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
				assert.Nil(t, got)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tt.expectedUser, got)
			}

			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetUserByCognitoID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("GetByCognitoID", mock.Anything, "cog-1").Return(&repository.User{
			UserID:    4,
			CognitoID: "cog-1",
			Username:  "ana",
		}, nil)

		service := NewUserService().WithUserRepo(mockUserRepo)

		got, err := service.GetUserByCognitoID(context.Background(), "cog-1")

		assert.Nil(t, err)
		assert.Equal(t, "ana", got.Username)
	})

	t.Run("missing user is nil, not an error", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("GetByCognitoID", mock.Anything, "cog-x").Return(nil, repository.ErrNotFound)

		service := NewUserService().WithUserRepo(mockUserRepo)

		got, err := service.GetUserByCognitoID(context.Background(), "cog-x")

		assert.Nil(t, err)
		assert.Nil(t, got)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("GetByCognitoID", mock.Anything, "cog-1").Return(nil, errors.New("db error"))

		service := NewUserService().WithUserRepo(mockUserRepo)

		got, err := service.GetUserByCognitoID(context.Background(), "cog-1")

		assert.NotNil(t, err)
		assert.Equal(t, ErrorCodeUnspecified, err.Code)
		assert.Nil(t, got)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("List", mock.Anything).Return([]*repository.User{
		{UserID: 1, Username: "ana"},
		{UserID: 2, Username: "bo"},
	}, nil)

	service := NewUserService().WithUserRepo(mockUserRepo)

	got, err := service.ListUsers(context.Background())

	assert.Nil(t, err)
	assert.Len(t, got, 2)
	mockUserRepo.AssertExpectations(t)
}
