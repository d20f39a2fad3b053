package reminder

import (
	"context"
	"sync"
	"time"

	c "petminder/internal/core/domain/common"
)

type FakeRepository struct {
	Reminders   []Reminder
	ReadWith    []ReadOptions
	Locked      []ID
	ReturnError error
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Reminders: make([]Reminder, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.ReturnError != nil {
		return rem, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Reminders {
		if existing.ID == input.ID {
			return rem, ErrReminderAlreadyExists
		}
	}
	rem = Reminder{
		ID:                input.ID,
		OwnerID:           input.OwnerID,
		PetID:             input.PetID,
		Title:             input.Title,
		Message:           input.Message,
		FireAt:            input.FireAt,
		IsRecurring:       input.IsRecurring,
		RecurrencePattern: input.RecurrencePattern,
		IsCompleted:       input.IsCompleted,
		CreatedAt:         input.CreatedAt,
	}
	r.Reminders = append(r.Reminders, rem)
	return rem, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (rem Reminder, err error) {
	if r.ReturnError != nil {
		return rem, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, rem := range r.Reminders {
		if rem.ID == id {
			return rem, nil
		}
	}
	return rem, ErrReminderDoesNotExist
}

func (r *FakeRepository) Lock(ctx context.Context, id ID) error {
	if r.ReturnError != nil {
		return r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Locked = append(r.Locked, id)
	return nil
}

func (r *FakeRepository) filter(options ReadOptions) []Reminder {
	reminders := make([]Reminder, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		if options.OwnerIDEquals.IsPresent && rem.OwnerID != options.OwnerIDEquals.Value {
			continue
		}
		if options.IsCompletedEquals.IsPresent && rem.IsCompleted != options.IsCompletedEquals.Value {
			continue
		}
		if options.FireAtNotAfter.IsPresent && rem.FireAt.After(options.FireAtNotAfter.Value) {
			continue
		}
		if options.IsNotPublished && rem.PublishedFireAt.IsPresent && rem.PublishedFireAt.Value.Equal(rem.FireAt) {
			continue
		}
		reminders = append(reminders, rem)
	}
	return reminders
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	if r.ReturnError != nil {
		return nil, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	return c.Paginate(r.filter(options), options.Offset, options.Limit), nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.ReturnError != nil {
		return 0, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return uint(len(r.filter(options))), nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (rem Reminder, err error) {
	if r.ReturnError != nil {
		return rem, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Reminders {
		if r.Reminders[ix].ID != input.ID {
			continue
		}
		target := &r.Reminders[ix]
		if input.DoPetIDUpdate {
			target.PetID = input.PetID
		}
		if input.DoTitleUpdate {
			target.Title = input.Title
		}
		if input.DoMessageUpdate {
			target.Message = input.Message
		}
		if input.DoFireAtUpdate {
			target.FireAt = input.FireAt
		}
		if input.DoIsRecurringUpdate {
			target.IsRecurring = input.IsRecurring
		}
		if input.DoRecurrencePatternUpdate {
			target.RecurrencePattern = input.RecurrencePattern
		}
		if input.DoIsCompletedUpdate {
			target.IsCompleted = input.IsCompleted
		}
		if input.DoPublishedFireAtUpdate {
			target.PublishedFireAt = input.PublishedFireAt
		}
		return *target, nil
	}
	return rem, ErrReminderDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError != nil {
		return r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, rem := range r.Reminders {
		if rem.ID == id {
			r.Reminders = append(r.Reminders[:ix], r.Reminders[ix+1:]...)
			return nil
		}
	}
	return ErrReminderDoesNotExist
}

type FakeDuePublisher struct {
	Published   []Reminder
	ReturnError error
	lock        sync.Mutex
}

func NewFakeDuePublisher() *FakeDuePublisher {
	return &FakeDuePublisher{}
}

func (p *FakeDuePublisher) PublishDue(ctx context.Context, r Reminder, at time.Time) error {
	if p.ReturnError != nil {
		return p.ReturnError
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, r)
	return nil
}
