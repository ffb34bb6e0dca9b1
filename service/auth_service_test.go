package service

import (
	"context"
	"database/sql"
	"go-stream-api/model"
	"go-stream-api/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) UpdateRefreshToken(ctx context.Context, id int, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}
func (m *mockUserRepo) UpdatePasswordHash(ctx context.Context, id int, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}
func (m *mockUserRepo) UpdateProfile(ctx context.Context, id int, fullName, email string) (*model.User, error) {
	args := m.Called(ctx, id, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) UpdateAvatar(ctx context.Context, id int, avatar string) error {
	args := m.Called(ctx, id, avatar)
	return args.Error(0)
}
func (m *mockUserRepo) UpdateCoverImage(ctx context.Context, id int, coverImage string) error {
	args := m.Called(ctx, id, coverImage)
	return args.Error(0)
}

// fastHasher keeps bcrypt at its minimum cost so tests stay quick.
func fastHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.MinCost}
}

func testUser(t *testing.T, hasher IPasswordHasher, password string) *model.User {
	t.Helper()
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	return &model.User{
		ID:       1,
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Example",
		Password: hash,
	}
}

func TestAuthService_Login(t *testing.T) {
	hasher := fastHasher()
	codec := NewTokenCodec(testJWTConfig())

	t.Run("success mints a pair and stores the refresh token", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "correct-password")

		mockRepo.On("GetUserByIdentifier", mock.Anything, "alice").Return(user, nil).Once()
		mockRepo.On("UpdateRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		resp, err := authService.Login(context.Background(), "alice", "correct-password")

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "alice", resp.User.Username)

		// The stored value is exactly the refresh token handed to the client.
		storedToken := mockRepo.Calls[1].Arguments.String(2)
		assert.Equal(t, resp.RefreshToken, storedToken)

		// Both tokens verify against their own kind only.
		_, err = codec.Verify(resp.AccessToken, model.TokenKindAccess)
		assert.NoError(t, err)
		_, err = codec.Verify(resp.RefreshToken, model.TokenKindRefresh)
		assert.NoError(t, err)

		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password mints nothing and writes nothing", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "correct-password")

		mockRepo.On("GetUserByIdentifier", mock.Anything, "alice").Return(user, nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err := authService.Login(context.Background(), "alice", "wrong-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		mockRepo.AssertNotCalled(t, "UpdateRefreshToken")
	})

	t.Run("unknown identifier", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByIdentifier", mock.Anything, "ghost").Return(nil, sql.ErrNoRows).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err := authService.Login(context.Background(), "ghost", "whatever-password")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("account deleted before the token write", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "correct-password")

		mockRepo.On("GetUserByIdentifier", mock.Anything, "alice").Return(user, nil).Once()
		mockRepo.On("UpdateRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(sql.ErrNoRows).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err := authService.Login(context.Background(), "alice", "correct-password")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("identifier is case-normalized", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "correct-password")

		mockRepo.On("GetUserByIdentifier", mock.Anything, "alice").Return(user, nil).Once()
		mockRepo.On("UpdateRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err := authService.Login(context.Background(), "ALICE", "correct-password")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	hasher := fastHasher()
	codec := NewTokenCodec(testJWTConfig())

	t.Run("valid token rotates the stored value", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "pw-irrelevant")

		presented, err := codec.Mint(user.ID, user.Username, model.TokenKindRefresh)
		assert.NoError(t, err)
		user.RefreshToken = presented

		mockRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()
		mockRepo.On("UpdateRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		pair, err := authService.Refresh(context.Background(), presented)

		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		// Rotation must produce a new value even when the fresh token is
		// minted within the same second as the presented one.
		assert.NotEqual(t, presented, pair.RefreshToken)

		stored := mockRepo.Calls[1].Arguments.String(2)
		assert.Equal(t, pair.RefreshToken, stored)
		mockRepo.AssertExpectations(t)
	})

	t.Run("account deleted before the rotated token lands", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "pw-irrelevant")

		presented, err := codec.Mint(user.ID, user.Username, model.TokenKindRefresh)
		assert.NoError(t, err)
		user.RefreshToken = presented

		mockRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()
		mockRepo.On("UpdateRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(sql.ErrNoRows).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err = authService.Refresh(context.Background(), presented)

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("superseded token is rejected and the store is untouched", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "pw-irrelevant")

		stale, err := codec.Mint(user.ID, user.Username, model.TokenKindRefresh)
		assert.NoError(t, err)
		// A later login rotated the stored value past the presented token.
		user.RefreshToken = stale + "-rotated-out"

		mockRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err = authService.Refresh(context.Background(), stale)

		assert.ErrorIs(t, err, ErrUnauthorized)
		mockRepo.AssertNotCalled(t, "UpdateRefreshToken")
	})

	t.Run("refresh after logout is rejected", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "pw-irrelevant")

		presented, err := codec.Mint(user.ID, user.Username, model.TokenKindRefresh)
		assert.NoError(t, err)
		user.RefreshToken = "" // cleared by logout

		mockRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err = authService.Refresh(context.Background(), presented)

		assert.ErrorIs(t, err, ErrUnauthorized)
		mockRepo.AssertNotCalled(t, "UpdateRefreshToken")
	})

	t.Run("missing token", func(t *testing.T) {
		authService := NewAuthService(new(mockUserRepo), codec, hasher)
		_, err := authService.Refresh(context.Background(), "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("access token cannot be used as a refresh token", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		accessToken, err := codec.Mint(1, "alice", model.TokenKindAccess)
		assert.NoError(t, err)

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err = authService.Refresh(context.Background(), accessToken)

		assert.ErrorIs(t, err, ErrUnauthorized)
		mockRepo.AssertNotCalled(t, "GetUserByID")
	})

	t.Run("unknown subject", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		presented, err := codec.Mint(99, "ghost", model.TokenKindRefresh)
		assert.NoError(t, err)

		mockRepo.On("GetUserByID", mock.Anything, 99).Return(nil, sql.ErrNoRows).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err = authService.Refresh(context.Background(), presented)

		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAuthService_Logout(t *testing.T) {
	hasher := fastHasher()
	codec := NewTokenCodec(testJWTConfig())

	t.Run("clears the stored token", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("UpdateRefreshToken", mock.Anything, 1, "").Return(nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		err := authService.Logout(context.Background(), 1)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("clearing an already-empty session is not an error", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("UpdateRefreshToken", mock.Anything, 1, "").Return(nil).Twice()

		authService := NewAuthService(mockRepo, codec, hasher)
		assert.NoError(t, authService.Logout(context.Background(), 1))
		assert.NoError(t, authService.Logout(context.Background(), 1))
	})
}

func TestAuthService_Register(t *testing.T) {
	hasher := fastHasher()
	codec := NewTokenCodec(testJWTConfig())

	t.Run("success lowercases the handle and hides the hash", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "newuser" && u.Email == "new@example.com" && u.Password != "secret-password"
		})).Return(nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		profile, err := authService.Register(context.Background(), model.RegisterRequest{
			Username: "NewUser",
			Email:    "New@Example.com",
			FullName: "New User",
			Password: "secret-password",
		})

		assert.NoError(t, err)
		assert.Equal(t, "newuser", profile.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate handle or email", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("CreateUser", mock.Anything, mock.Anything).Return(repository.ErrDuplicateKey).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		_, err := authService.Register(context.Background(), model.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			FullName: "Alice Example",
			Password: "secret-password",
		})

		assert.ErrorIs(t, err, ErrDuplicateUser)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hasher := fastHasher()
	codec := NewTokenCodec(testJWTConfig())

	t.Run("success replaces the hash and keeps the session", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "old-password")
		user.RefreshToken = "still-valid-refresh-token"

		mockRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()
		mockRepo.On("UpdatePasswordHash", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		err := authService.ChangePassword(context.Background(), user.ID, "old-password", "new-password")

		assert.NoError(t, err)
		newHash := mockRepo.Calls[1].Arguments.String(2)
		assert.True(t, hasher.Verify("new-password", newHash))
		// The stored refresh token is deliberately left alone.
		mockRepo.AssertNotCalled(t, "UpdateRefreshToken")
	})

	t.Run("wrong old password", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		user := testUser(t, hasher, "old-password")

		mockRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()

		authService := NewAuthService(mockRepo, codec, hasher)
		err := authService.ChangePassword(context.Background(), user.ID, "not-the-old-password", "new-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		mockRepo.AssertNotCalled(t, "UpdatePasswordHash")
	})
}
