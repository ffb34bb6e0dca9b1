package service

import (
	"context"
	"database/sql"
	"errors"
	"go-stream-api/logger"
	"go-stream-api/media"
	"go-stream-api/model"
	"go-stream-api/repository"
	"strings"

	"github.com/sirupsen/logrus"
)

// UserService handles profile reads and updates, and delegates image uploads
// to external media storage through the Uploader seam.
type UserService struct {
	userRepo repository.IUserRepository
	uploader media.Uploader
}

func NewUserService(userRepo repository.IUserRepository, uploader media.Uploader) *UserService {
	return &UserService{userRepo: userRepo, uploader: uploader}
}

func (s *UserService) GetCurrentUser(ctx context.Context, userID int) (*model.PublicProfile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, storeError(err)
	}
	return user.Public(), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.PublicProfile, error) {
	user, err := s.userRepo.UpdateProfile(ctx, userID, req.FullName, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		return nil, storeError(err)
	}

	logger.Log.WithField("user_id", userID).Info("Profile updated")
	return user.Public(), nil
}

// RequestImageUpload hands out a presigned PUT target for an avatar or cover
// image. Nothing is stored on the account until the client commits the key.
func (s *UserService) RequestImageUpload(ctx context.Context, userID int, prefix string) (*model.UploadTicket, error) {
	key, url, err := s.uploader.PresignPut(ctx, prefix)
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"key":     key,
	}).Info("Presigned media upload issued")
	return &model.UploadTicket{Key: key, URL: url}, nil
}

// CommitAvatar stores the public URL of an uploaded avatar on the account.
func (s *UserService) CommitAvatar(ctx context.Context, userID int, key string) (*model.PublicProfile, error) {
	if err := s.userRepo.UpdateAvatar(ctx, userID, s.uploader.PublicURL(key)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, storeError(err)
	}
	return s.GetCurrentUser(ctx, userID)
}

// CommitCoverImage stores the public URL of an uploaded cover image.
func (s *UserService) CommitCoverImage(ctx context.Context, userID int, key string) (*model.PublicProfile, error) {
	if err := s.userRepo.UpdateCoverImage(ctx, userID, s.uploader.PublicURL(key)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, storeError(err)
	}
	return s.GetCurrentUser(ctx, userID)
}
