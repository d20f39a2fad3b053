package task

import (
	"context"
	"time"

	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/user"
)

type CreateInput struct {
	ID          ID
	OwnerID     user.ID
	PetID       c.Optional[pet.ID]
	Type        string
	Title       string
	IsCompleted bool
	DueDate     c.Optional[time.Time]
	CreatedAt   time.Time
}

type ReadOptions struct {
	OwnerIDEquals     c.Optional[user.ID]
	IsCompletedEquals c.Optional[bool]
	Limit             c.Optional[uint]
	Offset            uint
}

type UpdateInput struct {
	ID                  ID
	DoPetIDUpdate       bool
	PetID               c.Optional[pet.ID]
	DoTypeUpdate        bool
	Type                string
	DoTitleUpdate       bool
	Title               string
	DoIsCompletedUpdate bool
	IsCompleted         bool
	DoDueDateUpdate     bool
	DueDate             c.Optional[time.Time]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Task, error)
	GetByID(ctx context.Context, id ID) (Task, error)
	Lock(ctx context.Context, id ID) error
	Read(ctx context.Context, options ReadOptions) ([]Task, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Update(ctx context.Context, input UpdateInput) (Task, error)
	Delete(ctx context.Context, id ID) error
}
