package uow

import (
	"context"

	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/reminder"
	"petminder/internal/core/domain/task"
	"petminder/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository     *user.FakeRepository
	PetRepository      *pet.FakeRepository
	TaskRepository     *task.FakeRepository
	ReminderRepository *reminder.FakeRepository
	WasRollbackCalled  bool
	WasCommitCalled    bool
}

func NewFakeUnitOfWorkContext() *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:     user.NewFakeRepository(),
		PetRepository:      pet.NewFakeRepository(),
		TaskRepository:     task.NewFakeRepository(),
		ReminderRepository: reminder.NewFakeRepository(),
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.Repository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Pets() pet.Repository {
	return c.PetRepository
}

func (c *FakeUnitOfWorkContext) Tasks() task.Repository {
	return c.TaskRepository
}

func (c *FakeUnitOfWorkContext) Reminders() reminder.Repository {
	return c.ReminderRepository
}

type FakeUnitOfWork struct {
	Context     *FakeUnitOfWorkContext
	ReturnError error
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{Context: NewFakeUnitOfWorkContext()}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnError != nil {
		return nil, u.ReturnError
	}
	return u.Context, nil
}

func (u *FakeUnitOfWork) Users() *user.FakeRepository {
	return u.Context.UserRepository
}

func (u *FakeUnitOfWork) Pets() *pet.FakeRepository {
	return u.Context.PetRepository
}

func (u *FakeUnitOfWork) Tasks() *task.FakeRepository {
	return u.Context.TaskRepository
}

func (u *FakeUnitOfWork) Reminders() *reminder.FakeRepository {
	return u.Context.ReminderRepository
}
