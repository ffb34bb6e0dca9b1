package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSubscriptionRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO subscriptions`)).
			WithArgs(5, 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

		sub, err := repo.Create(context.Background(), 5, 2)

		assert.NoError(t, err)
		assert.Equal(t, 1, sub.ID)
		assert.Equal(t, 5, sub.SubscriberID)
		assert.Equal(t, 2, sub.ChannelID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate pair maps to ErrDuplicateKey", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSubscriptionRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO subscriptions`)).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), 5, 2)

		assert.ErrorIs(t, err, ErrDuplicateKey)
	})
}

func TestSubscriptionRepository_Counts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	subscribers, err := repo.CountSubscribers(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), subscribers)

	subscribedTo, err := repo.CountSubscribedTo(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), subscribedTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
