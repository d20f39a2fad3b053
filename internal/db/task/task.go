package task

import (
	"context"
	"errors"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/task"
	"petminder/internal/core/domain/user"
	"petminder/internal/db"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const (
	ID_CONSTRAINT_NAME    = "task_pkey"
	OWNER_CONSTRAINT_NAME = "task_owner_id_fkey"
	PET_CONSTRAINT_NAME   = "task_pet_id_fkey"
)

const taskColumns = `id, owner_id, pet_id, type, title, is_completed, due_date, created_at`

const createTask = `
INSERT INTO task (id, owner_id, pet_id, type, title, is_completed, due_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + taskColumns

const getTaskByID = `SELECT ` + taskColumns + ` FROM task WHERE id = $1`

const lockTask = `SELECT id FROM task WHERE id = $1 FOR UPDATE`

const taskFilter = `
WHERE ($1::bool OR owner_id = $2)
  AND ($3::bool OR is_completed = $4)`

const readTasks = `SELECT ` + taskColumns + ` FROM task` + taskFilter + `
ORDER BY created_at, id
LIMIT $5 OFFSET $6`

const countTasks = `SELECT count(*) FROM task` + taskFilter

const updateTask = `
UPDATE task SET
    pet_id = CASE WHEN $2::bool THEN $3 ELSE pet_id END,
    type = CASE WHEN $4::bool THEN $5 ELSE type END,
    title = CASE WHEN $6::bool THEN $7 ELSE title END,
    is_completed = CASE WHEN $8::bool THEN $9 ELSE is_completed END,
    due_date = CASE WHEN $10::bool THEN $11 ELSE due_date END
WHERE id = $1
RETURNING ` + taskColumns

const deleteTask = `DELETE FROM task WHERE id = $1`

type PgxTaskRepository struct {
	db db.DBTX
}

func NewPgxTaskRepository(dbtx db.DBTX) *PgxTaskRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxTaskRepository{db: dbtx}
}

func (r *PgxTaskRepository) Create(ctx context.Context, input task.CreateInput) (t task.Task, err error) {
	row := r.db.QueryRow(
		ctx,
		createTask,
		string(input.ID),
		string(input.OwnerID),
		db.EncodeText(input.PetID),
		input.Type,
		input.Title,
		input.IsCompleted,
		db.EncodeTime(input.DueDate),
		input.CreatedAt,
	)
	t, err = scanTask(row)
	return t, mapConstraintError(err)
}

func (r *PgxTaskRepository) GetByID(ctx context.Context, id task.ID) (t task.Task, err error) {
	t, err = scanTask(r.db.QueryRow(ctx, getTaskByID, string(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return t, task.ErrTaskDoesNotExist
	}
	return t, err
}

func (r *PgxTaskRepository) Lock(ctx context.Context, id task.ID) error {
	// The method works only within a DB transaction
	_, err := r.db.Exec(ctx, lockTask, string(id))
	return err
}

func (r *PgxTaskRepository) Read(ctx context.Context, options task.ReadOptions) ([]task.Task, error) {
	args := append(filterArgs(options), db.Limit(options.Limit), int64(options.Offset))
	rows, err := r.db.Query(ctx, readTasks, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PgxTaskRepository) Count(ctx context.Context, options task.ReadOptions) (uint, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countTasks, filterArgs(options)...).Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxTaskRepository) Update(ctx context.Context, input task.UpdateInput) (t task.Task, err error) {
	row := r.db.QueryRow(
		ctx,
		updateTask,
		string(input.ID),
		input.DoPetIDUpdate,
		db.EncodeText(input.PetID),
		input.DoTypeUpdate,
		input.Type,
		input.DoTitleUpdate,
		input.Title,
		input.DoIsCompletedUpdate,
		input.IsCompleted,
		input.DoDueDateUpdate,
		db.EncodeTime(input.DueDate),
	)
	t, err = scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, task.ErrTaskDoesNotExist
	}
	return t, mapConstraintError(err)
}

func (r *PgxTaskRepository) Delete(ctx context.Context, id task.ID) error {
	tag, err := r.db.Exec(ctx, deleteTask, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskDoesNotExist
	}
	return nil
}

func filterArgs(options task.ReadOptions) []interface{} {
	return []interface{}{
		!options.OwnerIDEquals.IsPresent,
		string(options.OwnerIDEquals.Value),
		!options.IsCompletedEquals.IsPresent,
		options.IsCompletedEquals.Value,
	}
}

func mapConstraintError(err error) error {
	switch {
	case db.IsConstraintViolation(err, db.PG_UNIQUE_CONSTRAINT_ERR_CODE, ID_CONSTRAINT_NAME):
		return task.ErrTaskAlreadyExists
	case db.IsConstraintViolation(err, db.PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE, OWNER_CONSTRAINT_NAME):
		return user.ErrOwnerDoesNotExist
	case db.IsConstraintViolation(err, db.PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE, PET_CONSTRAINT_NAME):
		return pet.ErrInvalidReference
	}
	return err
}

func scanTask(row pgx.Row) (t task.Task, err error) {
	var (
		id        string
		ownerID   string
		petID     pgtype.Text
		dueDate   pgtype.Timestamptz
		createdAt time.Time
	)
	err = row.Scan(&id, &ownerID, &petID, &t.Type, &t.Title, &t.IsCompleted, &dueDate, &createdAt)
	if err != nil {
		return t, err
	}
	t.ID = task.ID(id)
	t.OwnerID = user.ID(ownerID)
	t.PetID = db.DecodeText[pet.ID](petID)
	t.DueDate = db.DecodeTime(dueDate)
	t.CreatedAt = createdAt.UTC()
	return t, nil
}
