package user

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"petminder/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

const (
	EMAIL_CONSTRAINT_NAME = "user_email_idx"
	ID_CONSTRAINT_NAME    = "user_pkey"
)

const userColumns = `id, email, first_name, last_name, password_hash, role, created_at`

const createUser = `
INSERT INTO "user" (id, email, first_name, last_name, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const getUserByID = `SELECT ` + userColumns + ` FROM "user" WHERE id = $1`

const getUserByEmail = `SELECT ` + userColumns + ` FROM "user" WHERE email = $1`

const lockUser = `SELECT id FROM "user" WHERE id = $1 FOR UPDATE`

const readUsers = `
SELECT ` + userColumns + ` FROM "user"
ORDER BY created_at, id
LIMIT $1 OFFSET $2`

const countUsers = `SELECT count(*) FROM "user"`

const updateUser = `
UPDATE "user" SET
    email = CASE WHEN $2::bool THEN $3 ELSE email END,
    first_name = CASE WHEN $4::bool THEN $5 ELSE first_name END,
    last_name = CASE WHEN $6::bool THEN $7 ELSE last_name END,
    password_hash = CASE WHEN $8::bool THEN $9 ELSE password_hash END,
    role = CASE WHEN $10::bool THEN $11 ELSE role END
WHERE id = $1
RETURNING ` + userColumns

const deleteUser = `DELETE FROM "user" WHERE id = $1`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxUserRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: dbtx}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		createUser,
		string(input.ID),
		string(input.Email),
		input.FirstName,
		input.LastName,
		string(input.PasswordHash),
		input.Role.String(),
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if db.IsConstraintViolation(err, db.PG_UNIQUE_CONSTRAINT_ERR_CODE, EMAIL_CONSTRAINT_NAME) {
		return u, user.ErrEmailAlreadyExists
	}
	if db.IsConstraintViolation(err, db.PG_UNIQUE_CONSTRAINT_ERR_CODE, ID_CONSTRAINT_NAME) {
		return u, user.ErrUserAlreadyExists
	}
	return u, err
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	u, err = scanUser(r.db.QueryRow(ctx, getUserByID, string(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	u, err = scanUser(r.db.QueryRow(ctx, getUserByEmail, string(email)))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) Lock(ctx context.Context, id user.ID) error {
	// The method works only within a DB transaction
	_, err := r.db.Exec(ctx, lockUser, string(id))
	return err
}

func (r *PgxUserRepository) Read(ctx context.Context, options user.ReadOptions) ([]user.User, error) {
	rows, err := r.db.Query(ctx, readUsers, db.Limit(options.Limit), int64(options.Offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) Count(ctx context.Context, options user.ReadOptions) (uint, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countUsers).Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		updateUser,
		string(input.ID),
		input.DoEmailUpdate,
		string(input.Email),
		input.DoFirstNameUpdate,
		input.FirstName,
		input.DoLastNameUpdate,
		input.LastName,
		input.DoPasswordHashUpdate,
		string(input.PasswordHash),
		input.DoRoleUpdate,
		input.Role.String(),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if db.IsConstraintViolation(err, db.PG_UNIQUE_CONSTRAINT_ERR_CODE, EMAIL_CONSTRAINT_NAME) {
		return u, user.ErrEmailAlreadyExists
	}
	return u, err
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(ctx, deleteUser, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           string
		email        string
		passwordHash string
		role         string
		createdAt    time.Time
	)
	err = row.Scan(&id, &email, &u.FirstName, &u.LastName, &passwordHash, &role, &createdAt)
	if err != nil {
		return u, err
	}
	u.Role, err = access.ParseRole(role)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.Email = c.Email(email)
	u.PasswordHash = user.PasswordHash(passwordHash)
	u.CreatedAt = createdAt.UTC()
	return u, nil
}
