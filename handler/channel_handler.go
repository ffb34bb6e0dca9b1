package handler

import (
	"encoding/json"
	"go-stream-api/common"
	"go-stream-api/service"
	"net/http"
)

// ChannelHandler holds dependencies for channel-related handlers.
type ChannelHandler struct {
	service *service.ChannelService
}

func NewChannelHandler(s *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{service: s}
}

// GetChannelProfile godoc
// @Summary      Get a channel's public profile
// @Description  Returns the channel profile with subscriber counts. When called with a token, includes whether the caller is subscribed.
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Channel handle"
// @Success      200  {object}  model.ChannelProfile
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Failure      404  {object}  common.AppError "Channel not found"
// @Router       /api/channels/{username} [get]
func (h *ChannelHandler) GetChannelProfile(w http.ResponseWriter, r *http.Request) *common.AppError {
	username := r.PathValue("username")
	if username == "" {
		return common.NewInvalidInputError("Channel handle is required", nil)
	}

	viewerID, _ := r.Context().Value(UserIDKey).(int)

	profile, err := h.service.GetChannelProfile(r.Context(), username, viewerID)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewNotFoundError("Channel not found", err)
		case service.ErrStoreUnavailable:
			return common.NewUnavailableError("Could not reach the store", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not load channel profile", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
	return nil
}

// Subscribe godoc
// @Summary      Subscribe to a channel
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Channel handle"
// @Success      201  "Subscribed"
// @Failure      400  {object}  common.AppError "Cannot subscribe to your own channel"
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Failure      404  {object}  common.AppError "Channel not found"
// @Failure      409  {object}  common.AppError "Already subscribed"
// @Router       /api/channels/{username}/subscribe [post]
func (h *ChannelHandler) Subscribe(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	username := r.PathValue("username")
	if username == "" {
		return common.NewInvalidInputError("Channel handle is required", nil)
	}

	if err := h.service.Subscribe(r.Context(), userID, username); err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewNotFoundError("Channel not found", err)
		case service.ErrSelfSubscription:
			return common.NewInvalidInputError(err.Error(), err)
		case service.ErrAlreadySubscribed:
			return common.NewConflictError(err.Error(), err)
		case service.ErrStoreUnavailable:
			return common.NewUnavailableError("Could not reach the store", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not subscribe", err)
		}
	}

	w.WriteHeader(http.StatusCreated)
	return nil
}

// Unsubscribe godoc
// @Summary      Unsubscribe from a channel
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Channel handle"
// @Success      204  "Unsubscribed"
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Failure      404  {object}  common.AppError "Channel not found"
// @Router       /api/channels/{username}/subscribe [delete]
func (h *ChannelHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	username := r.PathValue("username")
	if username == "" {
		return common.NewInvalidInputError("Channel handle is required", nil)
	}

	if err := h.service.Unsubscribe(r.Context(), userID, username); err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewNotFoundError("Channel not found", err)
		case service.ErrStoreUnavailable:
			return common.NewUnavailableError("Could not reach the store", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not unsubscribe", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
