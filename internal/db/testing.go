package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Repository packages live at internal/db/<name>.
const DEFAULT_TEST_MIGRATIONS_PATH = "../../../migrations"

func applyMigrations(connString string) {
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = DEFAULT_TEST_MIGRATIONS_PATH
	}
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		panic(fmt.Sprintf("Could not connect to DB for applying migrations %v.", err))
	}
	err = m.Up()
	if !errors.Is(err, migrate.ErrNoChange) && err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}
}

// SkipWithoutDatabase skips DB-backed tests unless TEST_POSTGRESQL_URL is set.
func SkipWithoutDatabase(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_POSTGRESQL_URL") == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
}

func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	applyMigrations(connString)

	ctx := context.Background()
	pool, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		panic("Could not connect to the database.")
	}

	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE \"user\" CASCADE")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}

// CreateTestUser inserts a user row other tables can reference.
func CreateTestUser(pool *pgxpool.Pool, id string) {
	_, err := pool.Exec(
		context.Background(),
		`INSERT INTO "user" (id, email, password_hash, role, created_at) VALUES ($1, $2, 'test', 'regular', now())`,
		id,
		id+"@test.test",
	)
	if err != nil {
		panic(fmt.Sprintf("Could not create test user %v.", err))
	}
}

// CreateTestPet inserts a pet row owned by ownerID.
func CreateTestPet(pool *pgxpool.Pool, id string, ownerID string) {
	_, err := pool.Exec(
		context.Background(),
		`INSERT INTO pet (id, owner_id, name, date_of_birth, created_at) VALUES ($1, $2, 'Rex', now(), now())`,
		id,
		ownerID,
	)
	if err != nil {
		panic(fmt.Sprintf("Could not create test pet %v.", err))
	}
}
