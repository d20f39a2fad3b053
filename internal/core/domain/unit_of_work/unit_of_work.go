package uow

import (
	"context"

	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/reminder"
	"petminder/internal/core/domain/task"
	"petminder/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.Repository
	Pets() pet.Repository
	Tasks() task.Repository
	Reminders() reminder.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
