package service

import (
	"context"
	"go-stream-api/model"
	"go-stream-api/repository"
)

const defaultHistoryLimit = 50

// HistoryService records and lists a user's watch history.
type HistoryService struct {
	historyRepo repository.IHistoryRepository
}

func NewHistoryService(historyRepo repository.IHistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

func (s *HistoryService) RecordWatch(ctx context.Context, userID int, videoID string) (*model.WatchHistoryEntry, error) {
	entry := &model.WatchHistoryEntry{
		UserID:  userID,
		VideoID: videoID,
	}
	if err := s.historyRepo.Append(ctx, entry); err != nil {
		return nil, storeError(err)
	}
	return entry, nil
}

// ListHistory returns the user's watch history, newest first.
func (s *HistoryService) ListHistory(ctx context.Context, userID, limit int) ([]*model.WatchHistoryEntry, error) {
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}
	entries, err := s.historyRepo.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, storeError(err)
	}
	return entries, nil
}

func (s *HistoryService) ClearHistory(ctx context.Context, userID int) error {
	if err := s.historyRepo.ClearByUserID(ctx, userID); err != nil {
		return storeError(err)
	}
	return nil
}
