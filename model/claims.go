package model

import "github.com/golang-jwt/jwt/v5"

// TokenKind distinguishes the two credentials the service issues. Each kind is
// signed with its own secret, so a token of one kind never verifies as the other.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

type AppClaims struct {
	UserID   int       `json:"user_id"`
	Username string    `json:"username"`
	Kind     TokenKind `json:"kind"`
	jwt.RegisteredClaims
}
