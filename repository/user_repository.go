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

// ErrDuplicateKey is returned when an insert violates a unique constraint
// (username or email already taken).
var ErrDuplicateKey = errors.New("duplicate key value")

// IUserRepository defines the contract for user database operations. It is the
// only component allowed to touch the password hash and stored refresh token.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateRefreshToken(ctx context.Context, id int, token string) error
	UpdatePasswordHash(ctx context.Context, id int, hash string) error
	UpdateProfile(ctx context.Context, id int, fullName, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id int, avatar string) error
	UpdateCoverImage(ctx context.Context, id int, coverImage string) error
}

// UserRepository implements IUserRepository on postgres.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, username, email, full_name, password, avatar, cover_image, refresh_token, created_at`

func scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FullName,
		&user.Password, &user.Avatar, &user.CoverImage, &user.RefreshToken, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new user row. A unique-constraint violation on username
// or email is reported as ErrDuplicateKey.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username": user.Username,
		"email":    user.Email,
	})
	log.Info("Executing query to create a new user")

	query := `INSERT INTO users (username, email, full_name, password, avatar, cover_image)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, user.Username, user.Email, user.FullName,
		user.Password, user.Avatar, user.CoverImage).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			log.Info("User with username or email already exists")
			return ErrDuplicateKey
		}
		log.WithError(err).Error("Failed to execute create user query")
		return err
	}
	return nil
}

// GetUserByIdentifier retrieves a user by username or email.
func (r *UserRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, identifier))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to execute get user by identifier query")
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("user_id", id).WithError(err).Error("Failed to execute get user by ID query")
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("username", username).WithError(err).Error("Failed to execute get user by username query")
		}
		return nil, err
	}
	return user, nil
}

// UpdateRefreshToken overwrites the stored refresh token for a user. An empty
// value clears the session. The single-column overwrite is atomic per row.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, id int, token string) error {
	log := logger.Log.WithField("user_id", id)
	log.Info("Executing query to update refresh token")

	query := `UPDATE users SET refresh_token = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, token, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute update refresh token query")
		return err
	}
	return requireRowAffected(result)
}

// UpdatePasswordHash replaces the stored password hash for a user.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int, hash string) error {
	log := logger.Log.WithField("user_id", id)
	log.Info("Executing query to update password hash")

	query := `UPDATE users SET password = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, hash, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute update password hash query")
		return err
	}
	return requireRowAffected(result)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int, fullName, email string) (*model.User, error) {
	log := logger.Log.WithField("user_id", id)
	log.Info("Executing query to update user profile")

	query := `UPDATE users SET full_name = $1, email = $2 WHERE id = $3 RETURNING ` + userColumns
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, fullName, email, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateKey
		}
		log.WithError(err).Error("Failed to execute update profile query")
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id int, avatar string) error {
	query := `UPDATE users SET avatar = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, avatar, id)
	if err != nil {
		logger.Log.WithField("user_id", id).WithError(err).Error("Failed to execute update avatar query")
		return err
	}
	return requireRowAffected(result)
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, id int, coverImage string) error {
	query := `UPDATE users SET cover_image = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, coverImage, id)
	if err != nil {
		logger.Log.WithField("user_id", id).WithError(err).Error("Failed to execute update cover image query")
		return err
	}
	return requireRowAffected(result)
}

// requireRowAffected maps an update that touched no rows to sql.ErrNoRows so
// callers see the same not-found signal as for reads.
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
