package login

import (
	"context"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	unitOfWork *uow.FakeUnitOfWork
	tokens     *user.FakeTokens
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.unitOfWork = uow.NewFakeUnitOfWork()
	suite.tokens = user.NewFakeTokens(24 * time.Hour)
	hasher := user.NewFakePasswordHasher()
	suite.service = New(
		suite.logger,
		suite.unitOfWork,
		hasher,
		suite.tokens,
		func() time.Time { return Now },
	)

	hash, err := hasher.HashPassword("secret-password")
	suite.Require().Nil(err)
	_, err = suite.unitOfWork.Users().Create(context.Background(), user.CreateInput{
		ID:           "user1",
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         access.RoleAdmin,
		CreatedAt:    Now,
	})
	suite.Require().Nil(err)
}

func TestLogInService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.service.Run(context.Background(), Input{
		Email:    c.NewEmail("Jane@example.com "),
		Password: "secret-password",
	})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(user.ID("user1"), result.User.ID)
	assert.NotEmpty(result.Token)
	assert.Equal(user.ID("user1"), result.Claims.SubjectID)
	assert.Equal(access.RoleAdmin, result.Claims.Role)
	assert.Equal(Now.Add(24*time.Hour), result.Claims.ExpiresAt)

	claims, err := s.tokens.ValidateToken(result.Token, Now)
	assert.Nil(err)
	assert.Equal(result.Claims, claims)
}

func (s *testSuite) TestInvalidCredentials() {
	cases := []struct {
		id       string
		email    c.Email
		password user.RawPassword
	}{
		{id: "wrong password", email: "jane@example.com", password: "secret"},
		{id: "unknown email", email: "john@example.com", password: "secret-password"},
	}
	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			_, err := s.service.Run(context.Background(), Input{Email: testcase.email, Password: testcase.password})
			s.ErrorIs(err, user.ErrInvalidCredentials)
			s.ErrorIs(err, e.ErrUnauthenticated)
		})
	}
	s.Empty(s.tokens.Issued)
}
