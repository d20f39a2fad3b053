// Package db holds what the PostgreSQL repositories share: the query
// executor they run on and the encoding of nullable columns.
package db

import (
	"context"
	"errors"
	c "petminder/internal/core/domain/common"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const (
	PG_UNIQUE_CONSTRAINT_ERR_CODE      = "23505"
	PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE = "23503"
)

// DBTX is satisfied by both a pool and a transaction.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// IsConstraintViolation reports whether err was raised by the named
// constraint with the given SQLSTATE code.
func IsConstraintViolation(err error, code string, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && pgErr.ConstraintName == constraintName
}

func EncodeText[T ~string](value c.Optional[T]) pgtype.Text {
	if !value.IsPresent {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: string(value.Value), Status: pgtype.Present}
}

func DecodeText[T ~string](value pgtype.Text) c.Optional[T] {
	return c.NewOptional(T(value.String), value.Status == pgtype.Present)
}

func EncodeTime(value c.Optional[time.Time]) pgtype.Timestamptz {
	if !value.IsPresent {
		return pgtype.Timestamptz{Status: pgtype.Null}
	}
	return pgtype.Timestamptz{Time: value.Value, Status: pgtype.Present}
}

func DecodeTime(value pgtype.Timestamptz) c.Optional[time.Time] {
	if value.Status != pgtype.Present {
		return c.Optional[time.Time]{}
	}
	return c.NewOptional(value.Time.UTC(), true)
}

// Limit translates an optional page size into a LIMIT argument; NULL means
// no limit.
func Limit(limit c.Optional[uint]) pgtype.Int8 {
	if !limit.IsPresent {
		return pgtype.Int8{Status: pgtype.Null}
	}
	return pgtype.Int8{Int: int64(limit.Value), Status: pgtype.Present}
}
