package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the payload for user authentication. Identifier is a
// username or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required,min=8"`
}

// RefreshRequest carries the refresh token when the client sends it in the
// body rather than as a cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest defines the payload for rotating a user's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,min=8"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UpdateProfileRequest defines the payload for updating account details.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

// CommitUploadRequest confirms a previously presigned media upload.
type CommitUploadRequest struct {
	Key string `json:"key" validate:"required"`
}

// RecordWatchRequest appends an entry to the caller's watch history.
type RecordWatchRequest struct {
	VideoID string `json:"video_id" validate:"required,max=64"`
}

// TokenPair is the credential bundle returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse bundles the minted tokens with the account's public profile.
type LoginResponse struct {
	TokenPair
	User *PublicProfile `json:"user"`
}

// UploadTicket is a presigned PUT target for a media upload.
type UploadTicket struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
