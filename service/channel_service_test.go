package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"go-stream-api/model"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSubscriptionRepo struct{ mock.Mock }

func (m *mockSubscriptionRepo) Create(ctx context.Context, subscriberID, channelID int) (*model.Subscription, error) {
	args := m.Called(ctx, subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}
func (m *mockSubscriptionRepo) Delete(ctx context.Context, subscriberID, channelID int) error {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}
func (m *mockSubscriptionRepo) Exists(ctx context.Context, subscriberID, channelID int) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}
func (m *mockSubscriptionRepo) CountSubscribers(ctx context.Context, channelID int) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockSubscriptionRepo) CountSubscribedTo(ctx context.Context, subscriberID int) (int64, error) {
	args := m.Called(ctx, subscriberID)
	return args.Get(0).(int64), args.Error(1)
}

// fakeCache is an in-memory ICacheClient for tests.
type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if value, ok := c.values[key]; ok {
		return redis.NewStringResult(value, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	c.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var deleted int64
	for _, key := range keys {
		if _, ok := c.values[key]; ok {
			delete(c.values, key)
			deleted++
		}
	}
	return redis.NewIntResult(deleted, nil)
}

func channelUser() *model.User {
	return &model.User{ID: 2, Username: "bob", Email: "bob@example.com", FullName: "Bob Channel"}
}

func TestChannelService_GetChannelProfile(t *testing.T) {
	t.Run("cache miss fetches counts and populates the cache", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		subRepo := new(mockSubscriptionRepo)
		cache := newFakeCache()

		userRepo.On("GetUserByUsername", mock.Anything, "bob").Return(channelUser(), nil).Once()
		subRepo.On("CountSubscribers", mock.Anything, 2).Return(int64(10), nil).Once()
		subRepo.On("CountSubscribedTo", mock.Anything, 2).Return(int64(3), nil).Once()

		channelService := NewChannelService(userRepo, subRepo, cache)
		profile, err := channelService.GetChannelProfile(context.Background(), "Bob", 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), profile.SubscriberCount)
		assert.Equal(t, int64(3), profile.SubscribedToCount)
		assert.False(t, profile.IsSubscribed)

		cached, ok := cache.values["channel:bob"]
		assert.True(t, ok)
		var cachedProfile model.ChannelProfile
		assert.NoError(t, json.Unmarshal([]byte(cached), &cachedProfile))
		assert.Equal(t, int64(10), cachedProfile.SubscriberCount)

		userRepo.AssertExpectations(t)
		subRepo.AssertExpectations(t)
	})

	t.Run("cache hit skips the user and count queries", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		subRepo := new(mockSubscriptionRepo)
		cache := newFakeCache()

		payload, err := json.Marshal(&model.ChannelProfile{
			PublicProfile:   *channelUser().Public(),
			SubscriberCount: 10,
		})
		assert.NoError(t, err)
		cache.values["channel:bob"] = string(payload)

		subRepo.On("Exists", mock.Anything, 5, 2).Return(true, nil).Once()

		channelService := NewChannelService(userRepo, subRepo, cache)
		profile, err := channelService.GetChannelProfile(context.Background(), "bob", 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), profile.SubscriberCount)
		assert.True(t, profile.IsSubscribed)
		userRepo.AssertNotCalled(t, "GetUserByUsername")
		subRepo.AssertNotCalled(t, "CountSubscribers")
	})

	t.Run("unknown channel", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, sql.ErrNoRows).Once()

		channelService := NewChannelService(userRepo, new(mockSubscriptionRepo), newFakeCache())
		_, err := channelService.GetChannelProfile(context.Background(), "ghost", 0)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestChannelService_Subscribe(t *testing.T) {
	t.Run("success invalidates the cached profile", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		subRepo := new(mockSubscriptionRepo)
		cache := newFakeCache()
		cache.values["channel:bob"] = "stale"

		userRepo.On("GetUserByUsername", mock.Anything, "bob").Return(channelUser(), nil).Once()
		subRepo.On("Create", mock.Anything, 5, 2).Return(&model.Subscription{ID: 1, SubscriberID: 5, ChannelID: 2}, nil).Once()

		channelService := NewChannelService(userRepo, subRepo, cache)
		err := channelService.Subscribe(context.Background(), 5, "bob")

		assert.NoError(t, err)
		_, ok := cache.values["channel:bob"]
		assert.False(t, ok)
		subRepo.AssertExpectations(t)
	})

	t.Run("own channel", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetUserByUsername", mock.Anything, "bob").Return(channelUser(), nil).Once()

		channelService := NewChannelService(userRepo, new(mockSubscriptionRepo), newFakeCache())
		err := channelService.Subscribe(context.Background(), 2, "bob")

		assert.ErrorIs(t, err, ErrSelfSubscription)
	})
}
