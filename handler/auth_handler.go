package handler

import (
	"encoding/json"
	"go-stream-api/common"
	"go-stream-api/model"
	"go-stream-api/service"
	"net/http"

	"github.com/sirupsen/logrus"

	"go-stream-api/logger"
)

const refreshTokenCookie = "refresh_token"

// AuthHandler exposes the session lifecycle over HTTP.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new account with a unique username and email. The response never includes the password hash.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "Registration details"
// @Success      201  {object}  model.PublicProfile
// @Failure      400  {object}  common.AppError "Missing or malformed fields"
// @Failure      409  {object}  common.AppError "Username or email already in use"
// @Failure      503  {object}  common.AppError "Store unavailable"
// @Router       /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	profile, err := h.authService.Register(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrDuplicateUser:
			return common.NewConflictError(err.Error(), err)
		case service.ErrStoreUnavailable:
			return common.NewUnavailableError("Could not reach the credential store", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not register user", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(profile)
	return nil
}

// Login godoc
// @Summary      Log in with username or email
// @Description  Verifies credentials and returns an access/refresh token pair plus the public profile. The refresh token replaces any previously stored one.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Login credentials"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError "Missing or malformed fields"
// @Failure      401  {object}  common.AppError "Wrong password"
// @Failure      404  {object}  common.AppError "No such account"
// @Failure      503  {object}  common.AppError "Store unavailable"
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	resp, err := h.authService.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewNotFoundError("User does not exist", err)
		case service.ErrInvalidCredentials:
			return common.NewUnauthorizedError("Invalid credentials", err)
		case service.ErrStoreUnavailable:
			return common.NewUnavailableError("Could not reach the credential store", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
		}
	}

	setSessionCookies(w, resp.AccessToken, resp.RefreshToken)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
	return nil
}

// Refresh godoc
// @Summary      Rotate the session tokens
// @Description  Exchanges a valid refresh token for a fresh token pair. The presented token is invalidated by rotation.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body model.RefreshRequest false "Refresh token (optional when sent as a cookie)"
// @Success      200  {object}  model.TokenPair
// @Failure      401  {object}  common.AppError "Missing, invalid, expired or superseded refresh token"
// @Failure      503  {object}  common.AppError "Store unavailable"
// @Router       /refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	presented := refreshTokenFromRequest(r)

	pair, err := h.authService.Refresh(r.Context(), presented)
	if err != nil {
		switch err {
		case service.ErrUnauthorized:
			return common.NewUnauthorizedError("Invalid refresh token", err)
		case service.ErrStoreUnavailable:
			return common.NewUnavailableError("Could not reach the credential store", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not refresh session", err)
		}
	}

	setSessionCookies(w, pair.AccessToken, pair.RefreshToken)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(pair)
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the stored refresh token for the authenticated user. Idempotent.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "Session cleared"
// @Failure      401  {object}  common.AppError "Invalid or missing token"
// @Failure      503  {object}  common.AppError "Store unavailable"
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	if err := h.authService.Logout(r.Context(), userID); err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewNotFoundError("User does not exist", err)
		case service.ErrStoreUnavailable:
			return common.NewUnavailableError("Could not reach the credential store", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not log out", err)
		}
	}

	clearSessionCookies(w)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// ChangePassword godoc
// @Summary      Change the account password
// @Description  Verifies the old password and stores a new hash. The current session stays valid.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        passwords body model.ChangePasswordRequest true "Old and new password"
// @Success      204  "Password changed"
// @Failure      400  {object}  common.AppError "Missing or malformed fields"
// @Failure      401  {object}  common.AppError "Old password does not verify"
// @Failure      503  {object}  common.AppError "Store unavailable"
// @Router       /api/users/me/password [put]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ChangePasswordRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewUnauthorizedError("Invalid user ID in token", nil)
	}

	log := logger.Log.WithFields(logrus.Fields{"user_id": userID})
	log.Info("Change password request received")

	if err := h.authService.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewNotFoundError("User does not exist", err)
		case service.ErrInvalidCredentials:
			return common.NewUnauthorizedError("Invalid credentials", err)
		case service.ErrStoreUnavailable:
			return common.NewUnavailableError("Could not reach the credential store", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not change password", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// refreshTokenFromRequest reads the refresh token from the cookie, falling
// back to the request body for non-browser clients.
func refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req model.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}

func setSessionCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteStrictMode,
		})
	}
}
