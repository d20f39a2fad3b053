package user

import (
	"context"
	"time"

	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
)

type ID string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type AccessToken string

func (t AccessToken) String() string {
	return "***"
}

type TokenID string

type User struct {
	ID           ID
	Email        c.Email
	FirstName    string
	LastName     string
	PasswordHash PasswordHash
	Role         access.Role
	CreatedAt    time.Time
}

// Owner makes every user the owner of its own account.
func (u User) Owner() string {
	return string(u.ID)
}

func (u User) Principal() access.Principal {
	return access.Principal{SubjectID: string(u.ID), Role: u.Role}
}

// Claims is the verified content of an access token.
type Claims struct {
	SubjectID ID
	Role      access.Role
	TokenID   TokenID
	ExpiresAt time.Time
}

func (c Claims) Principal() access.Principal {
	return access.Principal{SubjectID: string(c.SubjectID), Role: c.Role}
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type TokenIssuer interface {
	IssueToken(u User, now time.Time) (AccessToken, Claims, error)
}

type TokenValidator interface {
	ValidateToken(token AccessToken, now time.Time) (Claims, error)
}

// TokenRevoker keeps revoked tokens until they would have expired anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, claims Claims, now time.Time) error
	IsRevoked(ctx context.Context, id TokenID) (bool, error)
}
