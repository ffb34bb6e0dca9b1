package handler

import (
	"encoding/json"
	"go-stream-api/common"
	"go-stream-api/model"
	"go-stream-api/service"
	"net/http"
	"strconv"
)

// HistoryHandler holds dependencies for watch-history handlers.
type HistoryHandler struct {
	service *service.HistoryService
}

func NewHistoryHandler(s *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: s}
}

// RecordWatch godoc
// @Summary      Record a watched video
// @Tags         history
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entry body model.RecordWatchRequest true "Video identifier"
// @Success      201  {object}  model.WatchHistoryEntry
// @Failure      400  {object}  common.AppError "Missing or malformed fields"
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Router       /api/history [post]
func (h *HistoryHandler) RecordWatch(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RecordWatchRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	entry, err := h.service.RecordWatch(r.Context(), userID, req.VideoID)
	if err != nil {
		return mapHistoryServiceError(err, "Could not record watch history")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
	return nil
}

// ListHistory godoc
// @Summary      List the caller's watch history
// @Description  Returns watch history entries, newest first. The optional limit query parameter caps the page size.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of entries"
// @Success      200  {array}   model.WatchHistoryEntry
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Router       /api/history [get]
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return common.NewInvalidInputError("Invalid limit query parameter", err)
		}
		limit = parsed
	}

	entries, err := h.service.ListHistory(r.Context(), userID, limit)
	if err != nil {
		return mapHistoryServiceError(err, "Could not list watch history")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(entries)
	return nil
}

// ClearHistory godoc
// @Summary      Clear the caller's watch history
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      204  "History cleared"
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Router       /api/history [delete]
func (h *HistoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	if err := h.service.ClearHistory(r.Context(), userID); err != nil {
		return mapHistoryServiceError(err, "Could not clear watch history")
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func mapHistoryServiceError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrStoreUnavailable:
		return common.NewUnavailableError("Could not reach the store", err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}
