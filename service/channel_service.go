package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"go-stream-api/logger"
	"go-stream-api/model"
	"go-stream-api/repository"
	"strings"
	"time"
)

var (
	ErrSelfSubscription  = errors.New("cannot subscribe to your own channel")
	ErrAlreadySubscribed = errors.New("already subscribed to this channel")
)

const channelCacheTTL = 10 * time.Minute

// ChannelService serves public channel profiles and subscription operations,
// with a cache-aside layer for the count-heavy profile reads.
type ChannelService struct {
	userRepo    repository.IUserRepository
	subRepo     repository.ISubscriptionRepository
	cacheClient ICacheClient
}

func NewChannelService(userRepo repository.IUserRepository, subRepo repository.ISubscriptionRepository, cacheClient ICacheClient) *ChannelService {
	return &ChannelService{
		userRepo:    userRepo,
		subRepo:     subRepo,
		cacheClient: cacheClient,
	}
}

func channelCacheKey(username string) string {
	return fmt.Sprintf("channel:%s", username)
}

// GetChannelProfile returns a channel's public profile with subscriber counts,
// utilizing a cache-aside strategy. The viewer-specific IsSubscribed flag is
// resolved outside the cached payload so the cache stays shared.
func (s *ChannelService) GetChannelProfile(ctx context.Context, username string, viewerID int) (*model.ChannelProfile, error) {
	username = strings.ToLower(username)
	cacheKey := channelCacheKey(username)

	var profile *model.ChannelProfile

	// 1. Try the cache.
	cached, err := s.cacheClient.Get(ctx, cacheKey).Result()
	if err == nil {
		var p model.ChannelProfile
		if err := json.Unmarshal([]byte(cached), &p); err == nil {
			profile = &p
		}
	}

	// 2. Cache miss. Fetch from the database.
	if profile == nil {
		user, err := s.userRepo.GetUserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrUserNotFound
			}
			return nil, storeError(err)
		}

		subscribers, err := s.subRepo.CountSubscribers(ctx, user.ID)
		if err != nil {
			return nil, storeError(err)
		}
		subscribedTo, err := s.subRepo.CountSubscribedTo(ctx, user.ID)
		if err != nil {
			return nil, storeError(err)
		}

		profile = &model.ChannelProfile{
			PublicProfile:     *user.Public(),
			SubscriberCount:   subscribers,
			SubscribedToCount: subscribedTo,
		}

		// 3. Store the shared part for future requests.
		if data, err := json.Marshal(profile); err == nil {
			s.cacheClient.Set(ctx, cacheKey, data, channelCacheTTL)
		}
	}

	if viewerID != 0 && viewerID != profile.ID {
		subscribed, err := s.subRepo.Exists(ctx, viewerID, profile.ID)
		if err != nil {
			return nil, storeError(err)
		}
		profile.IsSubscribed = subscribed
	}

	return profile, nil
}

// Subscribe adds the caller as a subscriber of the named channel and
// invalidates the channel's cached profile.
func (s *ChannelService) Subscribe(ctx context.Context, subscriberID int, username string) error {
	username = strings.ToLower(username)

	channel, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return storeError(err)
	}

	if channel.ID == subscriberID {
		return ErrSelfSubscription
	}

	if _, err := s.subRepo.Create(ctx, subscriberID, channel.ID); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrAlreadySubscribed
		}
		return storeError(err)
	}

	s.cacheClient.Del(ctx, channelCacheKey(username))
	logger.Log.WithField("channel", username).Info("Subscription created")
	return nil
}

// Unsubscribe removes the caller's subscription; removing a missing one is
// not an error.
func (s *ChannelService) Unsubscribe(ctx context.Context, subscriberID int, username string) error {
	username = strings.ToLower(username)

	channel, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return storeError(err)
	}

	if err := s.subRepo.Delete(ctx, subscriberID, channel.ID); err != nil {
		return storeError(err)
	}

	s.cacheClient.Del(ctx, channelCacheKey(username))
	logger.Log.WithField("channel", username).Info("Subscription removed")
	return nil
}
