package service

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"go-stream-api/logger"
	"go-stream-api/model"
	"go-stream-api/repository"
	"strings"
)

// Sentinel errors for the auth flows. Handlers map these to stable status
// codes; everything token-related collapses into ErrUnauthorized so a caller
// learns nothing about why authentication failed.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDuplicateUser      = errors.New("username or email already in use")
	ErrStoreUnavailable   = errors.New("credential store unavailable")
)

// AuthService owns the session lifecycle: it is the only writer of the stored
// refresh token. One refresh token is stored per account, so a new login or
// refresh implicitly invalidates the previous session.
type AuthService struct {
	userRepo repository.IUserRepository
	codec    *TokenCodec
	hasher   IPasswordHasher
}

func NewAuthService(userRepo repository.IUserRepository, codec *TokenCodec, hasher IPasswordHasher) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
		hasher:   hasher,
	}
}

// Register creates a new account. The handle is lowercased before storage so
// lookups are case-insensitive; duplicate handle or email fails with
// ErrDuplicateUser and no row is created.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.PublicProfile, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: strings.ToLower(req.Username),
		Email:    strings.ToLower(req.Email),
		FullName: req.FullName,
		Password: hash,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		return nil, storeError(err)
	}

	logger.Log.WithField("username", user.Username).Info("User registered")
	return user.Public(), nil
}

// Login authenticates by handle or email and mints a fresh token pair. The
// refresh token is persisted on the account, overwriting any prior value.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetUserByIdentifier(ctx, strings.ToLower(identifier))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, storeError(err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.mintAndStorePair(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")
	return &model.LoginResponse{TokenPair: *pair, User: user.Public()}, nil
}

// Logout clears the stored refresh token. Clearing an already-empty value is
// not an error.
func (s *AuthService) Logout(ctx context.Context, userID int) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, ""); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return storeError(err)
	}

	logger.Log.WithField("user_id", userID).Info("User logged out")
	return nil
}

// Refresh exchanges a refresh token for a fresh pair and rotates the stored
// value, making the presented token permanently unusable. A presented token
// that does not exactly match the stored value is rejected: that mismatch is
// the sole revocation mechanism, catching tokens already rotated out. No
// failure path writes to the store.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*model.TokenPair, error) {
	if presented == "" {
		return nil, ErrUnauthorized
	}

	claims, err := s.codec.Verify(presented, model.TokenKindRefresh)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnauthorized
		}
		return nil, storeError(err)
	}

	if user.RefreshToken == "" ||
		subtle.ConstantTimeCompare([]byte(presented), []byte(user.RefreshToken)) != 1 {
		logger.Log.WithField("user_id", user.ID).Warn("Refresh token mismatch, possible reuse of a rotated token")
		return nil, ErrUnauthorized
	}

	pair, err := s.mintAndStorePair(ctx, user)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("Session refreshed")
	return pair, nil
}

// ChangePassword replaces the password hash after verifying the old password.
// It deliberately leaves the stored refresh token alone, so a password change
// does not force re-login.
func (s *AuthService) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return storeError(err)
	}

	if !s.hasher.Verify(oldPassword, user.Password) {
		return ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return storeError(err)
	}

	logger.Log.WithField("user_id", userID).Info("Password changed")
	return nil
}

// mintAndStorePair mints both tokens first and persists the refresh token
// last, so a failed store write never leaves half a session behind.
func (s *AuthService) mintAndStorePair(ctx context.Context, user *model.User) (*model.TokenPair, error) {
	accessToken, err := s.codec.Mint(user.ID, user.Username, model.TokenKindAccess)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.codec.Mint(user.ID, user.Username, model.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The account vanished between the read and the write.
			return nil, ErrUserNotFound
		}
		return nil, storeError(err)
	}

	return &model.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// storeError maps a driver or cancellation failure to ErrStoreUnavailable.
func storeError(err error) error {
	logger.Log.WithError(err).Error("Credential store failure")
	return ErrStoreUnavailable
}
