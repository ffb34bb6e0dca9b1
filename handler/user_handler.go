package handler

import (
	"context"
	"encoding/json"
	"go-stream-api/common"
	"go-stream-api/model"
	"go-stream-api/service"
	"net/http"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetCurrentUser godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.PublicProfile
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Failure      404  {object}  common.AppError "User does not exist"
// @Router       /api/users/me [get]
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	profile, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		return mapUserServiceError(err, "Could not load profile")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
	return nil
}

// UpdateProfile godoc
// @Summary      Update account details
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile body model.UpdateProfileRequest true "New profile details"
// @Success      200  {object}  model.PublicProfile
// @Failure      400  {object}  common.AppError "Missing or malformed fields"
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Failure      409  {object}  common.AppError "Email already in use"
// @Router       /api/users/me [patch]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.UpdateProfileRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		return mapUserServiceError(err, "Could not update profile")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
	return nil
}

// RequestAvatarUpload godoc
// @Summary      Request a presigned avatar upload
// @Description  Returns a short-lived URL the client PUTs the image to directly. Commit the returned key afterwards.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.UploadTicket
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Router       /api/users/me/avatar/upload [post]
func (h *UserHandler) RequestAvatarUpload(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.requestUpload(w, r, "avatars")
}

// RequestCoverUpload godoc
// @Summary      Request a presigned cover image upload
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.UploadTicket
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Router       /api/users/me/cover/upload [post]
func (h *UserHandler) RequestCoverUpload(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.requestUpload(w, r, "covers")
}

func (h *UserHandler) requestUpload(w http.ResponseWriter, r *http.Request, prefix string) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	ticket, err := h.service.RequestImageUpload(r.Context(), userID, prefix)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not prepare media upload", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ticket)
	return nil
}

// CommitAvatar godoc
// @Summary      Commit an uploaded avatar
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        upload body model.CommitUploadRequest true "Storage key from the upload ticket"
// @Success      200  {object}  model.PublicProfile
// @Failure      400  {object}  common.AppError "Missing or malformed fields"
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Router       /api/users/me/avatar [put]
func (h *UserHandler) CommitAvatar(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.commitUpload(w, r, h.service.CommitAvatar)
}

// CommitCoverImage godoc
// @Summary      Commit an uploaded cover image
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        upload body model.CommitUploadRequest true "Storage key from the upload ticket"
// @Success      200  {object}  model.PublicProfile
// @Failure      400  {object}  common.AppError "Missing or malformed fields"
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Router       /api/users/me/cover [put]
func (h *UserHandler) CommitCoverImage(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.commitUpload(w, r, h.service.CommitCoverImage)
}

func (h *UserHandler) commitUpload(w http.ResponseWriter, r *http.Request,
	commit func(ctx context.Context, userID int, key string) (*model.PublicProfile, error)) *common.AppError {
	var req model.CommitUploadRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	profile, err := commit(r.Context(), userID, req.Key)
	if err != nil {
		return mapUserServiceError(err, "Could not commit media upload")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
	return nil
}

// mapUserServiceError maps profile-service sentinel errors to stable codes.
func mapUserServiceError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrUserNotFound:
		return common.NewNotFoundError("User does not exist", err)
	case service.ErrDuplicateUser:
		return common.NewConflictError(err.Error(), err)
	case service.ErrStoreUnavailable:
		return common.NewUnavailableError("Could not reach the store", err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}
