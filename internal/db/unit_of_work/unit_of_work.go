package uow

import (
	"context"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/reminder"
	"petminder/internal/core/domain/task"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	dbpet "petminder/internal/db/pet"
	dbreminder "petminder/internal/db/reminder"
	dbtask "petminder/internal/db/task"
	dbuser "petminder/internal/db/user"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxUnitOfWorkContext struct {
	tx pgx.Tx
}

func newPgxUnitOfWorkContext(tx pgx.Tx) *pgxUnitOfWorkContext {
	return &pgxUnitOfWorkContext{
		tx: tx,
	}
}

func (c *pgxUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

func (c *pgxUnitOfWorkContext) Rollback(ctx context.Context) error {
	return c.tx.Rollback(ctx)
}

func (c *pgxUnitOfWorkContext) Users() user.Repository {
	return dbuser.NewPgxRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Pets() pet.Repository {
	return dbpet.NewPgxPetRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Tasks() task.Repository {
	return dbtask.NewPgxTaskRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Reminders() reminder.Repository {
	return dbreminder.NewPgxReminderRepository(c.tx)
}

type PgxUnitOfWork struct {
	db *pgxpool.Pool
}

func NewPgxUnitOfWork(db *pgxpool.Pool) *PgxUnitOfWork {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUnitOfWork{db: db}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newPgxUnitOfWorkContext(tx), nil
}
