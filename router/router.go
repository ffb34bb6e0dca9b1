package router

import (
	"go-stream-api/handler"
	"go-stream-api/service"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(
	codec *service.TokenCodec,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	channelHandler *handler.ChannelHandler,
	historyHandler *handler.HistoryHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Public routes.
	mux.Handle("POST /register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler())

	// Protected routes sit behind the access guard.
	protected := http.NewServeMux()
	protected.Handle("POST /logout", handler.ErrorHandlingMiddleware(authHandler.Logout))
	protected.Handle("GET /users/me", handler.ErrorHandlingMiddleware(userHandler.GetCurrentUser))
	protected.Handle("PATCH /users/me", handler.ErrorHandlingMiddleware(userHandler.UpdateProfile))
	protected.Handle("PUT /users/me/password", handler.ErrorHandlingMiddleware(authHandler.ChangePassword))
	protected.Handle("POST /users/me/avatar/upload", handler.ErrorHandlingMiddleware(userHandler.RequestAvatarUpload))
	protected.Handle("PUT /users/me/avatar", handler.ErrorHandlingMiddleware(userHandler.CommitAvatar))
	protected.Handle("POST /users/me/cover/upload", handler.ErrorHandlingMiddleware(userHandler.RequestCoverUpload))
	protected.Handle("PUT /users/me/cover", handler.ErrorHandlingMiddleware(userHandler.CommitCoverImage))
	protected.Handle("GET /channels/{username}", handler.ErrorHandlingMiddleware(channelHandler.GetChannelProfile))
	protected.Handle("POST /channels/{username}/subscribe", handler.ErrorHandlingMiddleware(channelHandler.Subscribe))
	protected.Handle("DELETE /channels/{username}/subscribe", handler.ErrorHandlingMiddleware(channelHandler.Unsubscribe))
	protected.Handle("POST /history", handler.ErrorHandlingMiddleware(historyHandler.RecordWatch))
	protected.Handle("GET /history", handler.ErrorHandlingMiddleware(historyHandler.ListHistory))
	protected.Handle("DELETE /history", handler.ErrorHandlingMiddleware(historyHandler.ClearHistory))

	authGuard := handler.AuthMiddleware(codec)
	mux.Handle("/api/", http.StripPrefix("/api", authGuard(protected)))

	return mux
}
