package user

import (
	"context"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/user"
	"petminder/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	db.SkipWithoutDatabase(t)
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateSuccess() {
	input := user.CreateInput{
		ID:           "user-1",
		Email:        c.NewEmail(EMAIL),
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: PASSWORD_HASH,
		Role:         access.RoleAdmin,
		CreatedAt:    NOW,
	}

	u, err := s.repo.Create(context.Background(), input)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(input.ID, u.ID)
	assert.Equal(input.Email, u.Email)
	assert.Equal("Jane", u.FirstName)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.Equal(access.RoleAdmin, u.Role)
	assert.True(input.CreatedAt.Equal(u.CreatedAt))

	byEmail, err := s.repo.GetByEmail(context.Background(), c.NewEmail(EMAIL))
	assert.Nil(err)
	assert.Equal(u, byEmail)
}

func (s *testSuite) TestEmailAlreadyExistsError() {
	s.createUser("user-1", EMAIL)

	_, err := s.repo.Create(context.Background(), user.CreateInput{
		ID:           "user-2",
		Email:        c.NewEmail(EMAIL),
		PasswordHash: PASSWORD_HASH,
		Role:         access.RoleRegular,
		CreatedAt:    NOW,
	})

	s.ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestUpdate() {
	s.createUser("user-1", EMAIL)
	s.createUser("user-2", "other@test.test")

	u, err := s.repo.Update(context.Background(), user.UpdateInput{
		ID:                "user-1",
		DoFirstNameUpdate: true,
		FirstName:         "John",
		DoRoleUpdate:      true,
		Role:              access.RoleAdmin,
	})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal("John", u.FirstName)
	assert.Equal(access.RoleAdmin, u.Role)
	assert.Equal(c.Email(EMAIL), u.Email)

	_, err = s.repo.Update(context.Background(), user.UpdateInput{
		ID:            "user-1",
		DoEmailUpdate: true,
		Email:         "other@test.test",
	})
	assert.ErrorIs(err, user.ErrEmailAlreadyExists)

	_, err = s.repo.Update(context.Background(), user.UpdateInput{ID: "missing"})
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestReadAndCount() {
	s.createUser("user-1", "a@test.test")
	s.createUser("user-2", "b@test.test")
	s.createUser("user-3", "c@test.test")

	users, err := s.repo.Read(context.Background(), user.ReadOptions{
		Limit:  c.NewOptional(uint(2), true),
		Offset: 1,
	})
	s.Nil(err)
	s.Len(users, 2)

	count, err := s.repo.Count(context.Background(), user.ReadOptions{})
	s.Nil(err)
	s.Equal(uint(3), count)
}

func (s *testSuite) TestDeleteCascades() {
	s.createUser("user-1", EMAIL)
	db.CreateTestPet(s.pool, "pet-1", "user-1")

	err := s.repo.Delete(context.Background(), "user-1")
	s.Nil(err)

	var petCount int
	err = s.pool.QueryRow(context.Background(), "SELECT count(*) FROM pet").Scan(&petCount)
	s.Nil(err)
	s.Equal(0, petCount)

	_, err = s.repo.GetByID(context.Background(), "user-1")
	s.ErrorIs(err, user.ErrUserDoesNotExist)
	s.ErrorIs(s.repo.Delete(context.Background(), "user-1"), user.ErrUserDoesNotExist)
}

func (s *testSuite) createUser(id user.ID, email string) user.User {
	s.T().Helper()
	u, err := s.repo.Create(
		context.Background(),
		user.CreateInput{
			ID:           id,
			Email:        c.NewEmail(email),
			PasswordHash: PASSWORD_HASH,
			Role:         access.RoleRegular,
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNowf("could not create user", "err: %v", err)
	}
	return u
}
