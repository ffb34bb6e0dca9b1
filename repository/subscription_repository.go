package repository

import (
	"context"
	"database/sql"
	"errors"
	"go-stream-api/logger"
	"go-stream-api/model"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ISubscriptionRepository defines the contract for subscription database operations.
type ISubscriptionRepository interface {
	Create(ctx context.Context, subscriberID, channelID int) (*model.Subscription, error)
	Delete(ctx context.Context, subscriberID, channelID int) error
	Exists(ctx context.Context, subscriberID, channelID int) (bool, error)
	CountSubscribers(ctx context.Context, channelID int) (int64, error)
	CountSubscribedTo(ctx context.Context, subscriberID int) (int64, error)
}

// SubscriptionRepository implements ISubscriptionRepository.
type SubscriptionRepository struct {
	DB *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

// Create inserts a subscription. Subscribing twice to the same channel reports
// ErrDuplicateKey via the (subscriber_id, channel_id) unique constraint.
func (r *SubscriptionRepository) Create(ctx context.Context, subscriberID, channelID int) (*model.Subscription, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"subscriber_id": subscriberID,
		"channel_id":    channelID,
	})
	log.Info("Executing query to create a subscription")

	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	query := `INSERT INTO subscriptions (subscriber_id, channel_id) VALUES ($1, $2) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, subscriberID, channelID).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateKey
		}
		log.WithError(err).Error("Failed to execute create subscription query")
		return nil, err
	}
	return sub, nil
}

// Delete removes a subscription if present. Deleting a missing row is not an
// error; unsubscribe is idempotent.
func (r *SubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID int) error {
	query := `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`
	_, err := r.DB.ExecContext(ctx, query, subscriberID, channelID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete subscription query")
		return err
	}
	return nil
}

func (r *SubscriptionRepository) Exists(ctx context.Context, subscriberID, channelID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2)`
	err := r.DB.QueryRowContext(ctx, query, subscriberID, channelID).Scan(&exists)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute subscription exists query")
		return false, err
	}
	return exists, nil
}

func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channelID int) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`
	err := r.DB.QueryRowContext(ctx, query, channelID).Scan(&count)
	if err != nil {
		logger.Log.WithField("channel_id", channelID).WithError(err).Error("Failed to execute count subscribers query")
		return 0, err
	}
	return count, nil
}

func (r *SubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID int) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1`
	err := r.DB.QueryRowContext(ctx, query, subscriberID).Scan(&count)
	if err != nil {
		logger.Log.WithField("subscriber_id", subscriberID).WithError(err).Error("Failed to execute count subscribed-to query")
		return 0, err
	}
	return count, nil
}
