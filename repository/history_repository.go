package repository

import (
	"context"
	"database/sql"
	"go-stream-api/logger"
	"go-stream-api/model"

	"github.com/sirupsen/logrus"
)

// IHistoryRepository defines the contract for watch-history database operations.
type IHistoryRepository interface {
	Append(ctx context.Context, entry *model.WatchHistoryEntry) error
	ListByUserID(ctx context.Context, userID, limit int) ([]*model.WatchHistoryEntry, error)
	ClearByUserID(ctx context.Context, userID int) error
}

// HistoryRepository implements IHistoryRepository.
type HistoryRepository struct {
	DB *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

func (r *HistoryRepository) Append(ctx context.Context, entry *model.WatchHistoryEntry) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":  entry.UserID,
		"video_id": entry.VideoID,
	})
	log.Info("Executing query to append watch history entry")

	query := `INSERT INTO watch_history (user_id, video_id) VALUES ($1, $2) RETURNING id, watched_at`
	err := r.DB.QueryRowContext(ctx, query, entry.UserID, entry.VideoID).Scan(&entry.ID, &entry.WatchedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute append watch history query")
		return err
	}
	return nil
}

// ListByUserID retrieves a user's watch history, newest first.
func (r *HistoryRepository) ListByUserID(ctx context.Context, userID, limit int) ([]*model.WatchHistoryEntry, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to list watch history")

	query := `
		SELECT id, user_id, video_id, watched_at
		FROM watch_history
		WHERE user_id = $1
		ORDER BY watched_at DESC
		LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to execute list watch history query")
		return nil, err
	}
	defer rows.Close()

	var entries []*model.WatchHistoryEntry
	for rows.Next() {
		var e model.WatchHistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.VideoID, &e.WatchedAt); err != nil {
			log.WithError(err).Error("Failed to scan watch history row")
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *HistoryRepository) ClearByUserID(ctx context.Context, userID int) error {
	query := `DELETE FROM watch_history WHERE user_id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		logger.Log.WithField("user_id", userID).WithError(err).Error("Failed to execute clear watch history query")
		return err
	}
	return nil
}
