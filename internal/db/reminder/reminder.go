package reminder

import (
	"context"
	"errors"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/reminder"
	"petminder/internal/core/domain/user"
	"petminder/internal/db"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const (
	ID_CONSTRAINT_NAME    = "reminder_pkey"
	OWNER_CONSTRAINT_NAME = "reminder_owner_id_fkey"
	PET_CONSTRAINT_NAME   = "reminder_pet_id_fkey"
)

const reminderColumns = `id, owner_id, pet_id, title, message, fire_at, is_recurring, recurrence_pattern, is_completed, created_at, published_fire_at`

const createReminder = `
INSERT INTO reminder (id, owner_id, pet_id, title, message, fire_at, is_recurring, recurrence_pattern, is_completed, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + reminderColumns

const getReminderByID = `SELECT ` + reminderColumns + ` FROM reminder WHERE id = $1`

const lockReminder = `SELECT id FROM reminder WHERE id = $1 FOR UPDATE`

const reminderFilter = `
WHERE ($1::bool OR owner_id = $2)
  AND ($3::bool OR is_completed = $4)
  AND ($5::bool OR fire_at <= $6)
  AND (NOT $7::bool OR published_fire_at IS NULL OR published_fire_at <> fire_at)`

const readReminders = `SELECT ` + reminderColumns + ` FROM reminder` + reminderFilter + `
ORDER BY fire_at, id
LIMIT $8 OFFSET $9`

const countReminders = `SELECT count(*) FROM reminder` + reminderFilter

const updateReminder = `
UPDATE reminder SET
    pet_id = CASE WHEN $2::bool THEN $3 ELSE pet_id END,
    title = CASE WHEN $4::bool THEN $5 ELSE title END,
    message = CASE WHEN $6::bool THEN $7 ELSE message END,
    fire_at = CASE WHEN $8::bool THEN $9 ELSE fire_at END,
    is_recurring = CASE WHEN $10::bool THEN $11 ELSE is_recurring END,
    recurrence_pattern = CASE WHEN $12::bool THEN $13 ELSE recurrence_pattern END,
    is_completed = CASE WHEN $14::bool THEN $15 ELSE is_completed END,
    published_fire_at = CASE WHEN $16::bool THEN $17 ELSE published_fire_at END
WHERE id = $1
RETURNING ` + reminderColumns

const deleteReminder = `DELETE FROM reminder WHERE id = $1`

type PgxReminderRepository struct {
	db db.DBTX
}

func NewPgxReminderRepository(dbtx db.DBTX) *PgxReminderRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxReminderRepository{db: dbtx}
}

func (r *PgxReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		createReminder,
		string(input.ID),
		string(input.OwnerID),
		db.EncodeText(input.PetID),
		input.Title,
		db.EncodeText(input.Message),
		input.FireAt,
		input.IsRecurring,
		db.EncodeText(input.RecurrencePattern),
		input.IsCompleted,
		input.CreatedAt,
	)
	rem, err = scanReminder(row)
	return rem, mapConstraintError(err)
}

func (r *PgxReminderRepository) Lock(ctx context.Context, id reminder.ID) error {
	// The method works only within a DB transaction
	_, err := r.db.Exec(ctx, lockReminder, string(id))
	return err
}

func (r *PgxReminderRepository) GetByID(
	ctx context.Context,
	id reminder.ID,
) (rem reminder.Reminder, err error) {
	rem, err = scanReminder(r.db.QueryRow(ctx, getReminderByID, string(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) (reminders []reminder.Reminder, err error) {
	query := readReminders
	if options.ForUpdateSkipLocked {
		query += "\nFOR UPDATE SKIP LOCKED"
	}
	args := append(filterArgs(options), db.Limit(options.Limit), int64(options.Offset))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return reminders, err
	}
	defer rows.Close()

	reminders = make([]reminder.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return reminders, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *PgxReminderRepository) Count(ctx context.Context, options reminder.ReadOptions) (uint, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countReminders, filterArgs(options)...).Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxReminderRepository) Update(
	ctx context.Context,
	input reminder.UpdateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		updateReminder,
		string(input.ID),
		input.DoPetIDUpdate,
		db.EncodeText(input.PetID),
		input.DoTitleUpdate,
		input.Title,
		input.DoMessageUpdate,
		db.EncodeText(input.Message),
		input.DoFireAtUpdate,
		input.FireAt,
		input.DoIsRecurringUpdate,
		input.IsRecurring,
		input.DoRecurrencePatternUpdate,
		db.EncodeText(input.RecurrencePattern),
		input.DoIsCompletedUpdate,
		input.IsCompleted,
		input.DoPublishedFireAtUpdate,
		db.EncodeTime(input.PublishedFireAt),
	)
	rem, err = scanReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, mapConstraintError(err)
}

func (r *PgxReminderRepository) Delete(
	ctx context.Context,
	id reminder.ID,
) error {
	tag, err := r.db.Exec(ctx, deleteReminder, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return reminder.ErrReminderDoesNotExist
	}
	return nil
}

func filterArgs(options reminder.ReadOptions) []interface{} {
	return []interface{}{
		!options.OwnerIDEquals.IsPresent,
		string(options.OwnerIDEquals.Value),
		!options.IsCompletedEquals.IsPresent,
		options.IsCompletedEquals.Value,
		!options.FireAtNotAfter.IsPresent,
		options.FireAtNotAfter.Value,
		options.IsNotPublished,
	}
}

func mapConstraintError(err error) error {
	switch {
	case db.IsConstraintViolation(err, db.PG_UNIQUE_CONSTRAINT_ERR_CODE, ID_CONSTRAINT_NAME):
		return reminder.ErrReminderAlreadyExists
	case db.IsConstraintViolation(err, db.PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE, OWNER_CONSTRAINT_NAME):
		return user.ErrOwnerDoesNotExist
	case db.IsConstraintViolation(err, db.PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE, PET_CONSTRAINT_NAME):
		return pet.ErrInvalidReference
	}
	return err
}

func scanReminder(row pgx.Row) (rem reminder.Reminder, err error) {
	var (
		id                string
		ownerID           string
		petID             pgtype.Text
		message           pgtype.Text
		fireAt            time.Time
		recurrencePattern pgtype.Text
		createdAt         time.Time
		publishedFireAt   pgtype.Timestamptz
	)
	err = row.Scan(
		&id,
		&ownerID,
		&petID,
		&rem.Title,
		&message,
		&fireAt,
		&rem.IsRecurring,
		&recurrencePattern,
		&rem.IsCompleted,
		&createdAt,
		&publishedFireAt,
	)
	if err != nil {
		return rem, err
	}
	rem.ID = reminder.ID(id)
	rem.OwnerID = user.ID(ownerID)
	rem.PetID = db.DecodeText[pet.ID](petID)
	rem.Message = db.DecodeText[string](message)
	rem.FireAt = fireAt.UTC()
	rem.RecurrencePattern = db.DecodeText[string](recurrencePattern)
	rem.CreatedAt = createdAt.UTC()
	rem.PublishedFireAt = db.DecodeTime(publishedFireAt)
	return rem, nil
}
