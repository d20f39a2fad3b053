package reminder

import (
	"context"
	"time"

	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/user"
)

type CreateInput struct {
	ID                ID
	OwnerID           user.ID
	PetID             c.Optional[pet.ID]
	Title             string
	Message           c.Optional[string]
	FireAt            time.Time
	IsRecurring       bool
	RecurrencePattern c.Optional[string]
	IsCompleted       bool
	CreatedAt         time.Time
}

type ReadOptions struct {
	OwnerIDEquals     c.Optional[user.ID]
	IsCompletedEquals c.Optional[bool]
	FireAtNotAfter    c.Optional[time.Time]
	Limit             c.Optional[uint]
	Offset            uint

	// IsNotPublished keeps reminders not yet published for their current fire time.
	IsNotPublished bool

	// ForUpdateSkipLocked locks returned rows, skipping rows locked by concurrent scans.
	ForUpdateSkipLocked bool
}

type UpdateInput struct {
	ID                        ID
	DoPetIDUpdate             bool
	PetID                     c.Optional[pet.ID]
	DoTitleUpdate             bool
	Title                     string
	DoMessageUpdate           bool
	Message                   c.Optional[string]
	DoFireAtUpdate            bool
	FireAt                    time.Time
	DoIsRecurringUpdate       bool
	IsRecurring               bool
	DoRecurrencePatternUpdate bool
	RecurrencePattern         c.Optional[string]
	DoIsCompletedUpdate       bool
	IsCompleted               bool
	DoPublishedFireAtUpdate   bool
	PublishedFireAt           c.Optional[time.Time]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	GetByID(ctx context.Context, id ID) (Reminder, error)
	Lock(ctx context.Context, id ID) error
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Update(ctx context.Context, input UpdateInput) (Reminder, error)
	Delete(ctx context.Context, id ID) error
}

// DuePublisher announces that a reminder became due. Delivering the
// notification is up to the consumers.
type DuePublisher interface {
	PublishDue(ctx context.Context, r Reminder, at time.Time) error
}
