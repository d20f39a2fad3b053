package user

import (
	"context"
	"errors"
	"time"

	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
)

type CreateInput struct {
	ID           ID
	Email        c.Email
	FirstName    string
	LastName     string
	PasswordHash PasswordHash
	Role         access.Role
	CreatedAt    time.Time
}

type ReadOptions struct {
	Limit  c.Optional[uint]
	Offset uint
}

type UpdateInput struct {
	ID                   ID
	DoEmailUpdate        bool
	Email                c.Email
	DoFirstNameUpdate    bool
	FirstName            string
	DoLastNameUpdate     bool
	LastName             string
	DoPasswordHashUpdate bool
	PasswordHash         PasswordHash
	DoRoleUpdate         bool
	Role                 access.Role
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Lock(ctx context.Context, id ID) error
	Read(ctx context.Context, options ReadOptions) ([]User, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Update(ctx context.Context, input UpdateInput) (User, error)
	Delete(ctx context.Context, id ID) error
}

// CheckOwner verifies that a record is about to be assigned to an existing
// user.
func CheckOwner(ctx context.Context, users Repository, ownerID ID) error {
	_, err := users.GetByID(ctx, ownerID)
	if errors.Is(err, ErrUserDoesNotExist) {
		return ErrOwnerDoesNotExist
	}
	return err
}
