package service

import (
	"errors"
	"fmt"
	"go-stream-api/config"
	"go-stream-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for every rejection: bad signature,
// malformed input, expiry, or a kind mismatch. Business-level failures such as
// an unknown account are the caller's concern, never this package's.
var ErrInvalidToken = errors.New("invalid token")

// TokenCodec mints and verifies the signed tokens carrying an identity claim.
// It is stateless; access and refresh tokens are signed with different secrets
// so one kind can never be replayed as the other.
type TokenCodec struct {
	cfg config.JWTConfig
}

func NewTokenCodec(cfg config.JWTConfig) *TokenCodec {
	return &TokenCodec{cfg: cfg}
}

func (c *TokenCodec) secret(kind model.TokenKind) ([]byte, error) {
	switch kind {
	case model.TokenKindAccess:
		return []byte(c.cfg.AccessSecret), nil
	case model.TokenKindRefresh:
		return []byte(c.cfg.RefreshSecret), nil
	default:
		return nil, fmt.Errorf("unknown token kind %q", kind)
	}
}

func (c *TokenCodec) ttl(kind model.TokenKind) time.Duration {
	if kind == model.TokenKindRefresh {
		return c.cfg.RefreshTTL
	}
	return c.cfg.AccessTTL
}

// Mint produces a signed token for the user, expiring after the configured TTL
// for the kind. It has no side effects.
func (c *TokenCodec) Mint(userID int, username string, kind model.TokenKind) (string, error) {
	secret, err := c.secret(kind)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &model.AppClaims{
		UserID:   userID,
		Username: username,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			// iat/exp are second-truncated, so the jti is what keeps two
			// tokens minted within the same second distinct. Rotation
			// depends on every minted token being unique.
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl(kind))),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// Verify parses the token with the secret for the expected kind and returns
// its claims. An expired token is invalid regardless of signature validity;
// the expiry condition stays distinguishable via jwt.ErrTokenExpired.
func (c *TokenCodec) Verify(tokenString string, kind model.TokenKind) (*model.AppClaims, error) {
	secret, err := c.secret(kind)
	if err != nil {
		return nil, err
	}

	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Kind != kind {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
