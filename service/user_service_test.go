package service

import (
	"context"
	"database/sql"
	"fmt"
	"go-stream-api/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeUploader stands in for the external media store.
type fakeUploader struct {
	presigned int
}

func (u *fakeUploader) PresignPut(ctx context.Context, prefix string) (string, string, error) {
	u.presigned++
	key := fmt.Sprintf("%s/2026/01/01/object-%d", prefix, u.presigned)
	return key, "https://media.example.com/upload/" + key, nil
}

func (u *fakeUploader) PublicURL(key string) string {
	return "https://media.example.com/" + key
}

func TestUserService_GetCurrentUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, fastHasher(), "pw")
		mockRepo.On("GetUserByID", mock.Anything, 1).Return(user, nil).Once()

		userService := NewUserService(mockRepo, &fakeUploader{})
		profile, err := userService.GetCurrentUser(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "alice", profile.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByID", mock.Anything, 99).Return(nil, sql.ErrNoRows).Once()

		userService := NewUserService(mockRepo, &fakeUploader{})
		_, err := userService.GetCurrentUser(context.Background(), 99)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_AvatarUpload(t *testing.T) {
	mockRepo := new(mockUserRepo)
	uploader := &fakeUploader{}
	userService := NewUserService(mockRepo, uploader)

	ticket, err := userService.RequestImageUpload(context.Background(), 1, "avatars")
	assert.NoError(t, err)
	assert.NotEmpty(t, ticket.Key)
	assert.Contains(t, ticket.URL, ticket.Key)

	user := testUser(t, fastHasher(), "pw")
	user.Avatar = uploader.PublicURL(ticket.Key)
	mockRepo.On("UpdateAvatar", mock.Anything, 1, uploader.PublicURL(ticket.Key)).Return(nil).Once()
	mockRepo.On("GetUserByID", mock.Anything, 1).Return(user, nil).Once()

	profile, err := userService.CommitAvatar(context.Background(), 1, ticket.Key)
	assert.NoError(t, err)
	assert.Equal(t, uploader.PublicURL(ticket.Key), profile.Avatar)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile(t *testing.T) {
	mockRepo := new(mockUserRepo)
	user := testUser(t, fastHasher(), "pw")
	user.FullName = "Alice Renamed"

	mockRepo.On("UpdateProfile", mock.Anything, 1, "Alice Renamed", "alice@example.com").Return(user, nil).Once()

	userService := NewUserService(mockRepo, &fakeUploader{})
	profile, err := userService.UpdateProfile(context.Background(), 1, model.UpdateProfileRequest{
		FullName: "Alice Renamed",
		Email:    "Alice@Example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice Renamed", profile.FullName)
	mockRepo.AssertExpectations(t)
}
