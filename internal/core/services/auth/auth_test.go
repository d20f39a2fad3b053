package auth

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

type input struct {
	Principal access.Principal
}

func (i input) WithClaims(claims user.Claims) Input {
	i.Principal = claims.Principal()
	return i
}

type result struct{}

type stubService struct {
	CalledWith []input
}

func (s *stubService) Run(ctx context.Context, input input) (result result, err error) {
	s.CalledWith = append(s.CalledWith, input)
	return result, nil
}

type testSuite struct {
	suite.Suite
	logger  *logging.FakeLogger
	tokens  *user.FakeTokens
	revoker *user.FakeTokenRevoker
	inner   *stubService
	service services.Service[input, result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.tokens = user.NewFakeTokens(time.Hour)
	suite.revoker = user.NewFakeTokenRevoker()
	suite.inner = &stubService{}
	suite.service = WithAuthentication[input, result](
		suite.logger,
		suite.tokens,
		suite.revoker,
		func() time.Time { return Now },
		suite.inner,
	)
}

func TestAuthentication(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) issue(u user.User) (user.AccessToken, user.Claims) {
	token, claims, err := s.tokens.IssueToken(u, Now)
	s.Require().Nil(err)
	return token, claims
}

func (s *testSuite) TestPrincipalResolvedFromToken() {
	token, _ := s.issue(user.User{ID: "user1", Role: access.RoleAdmin})
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, token)

	_, err := s.service.Run(ctx, input{Principal: access.Principal{SubjectID: "spoofed", Role: access.RoleAdmin}})

	s.Nil(err)
	s.Require().Len(s.inner.CalledWith, 1)
	s.Equal(access.Principal{SubjectID: "user1", Role: access.RoleAdmin}, s.inner.CalledWith[0].Principal)
}

func (s *testSuite) TestMissingToken() {
	_, err := s.service.Run(context.Background(), input{})

	s.ErrorIs(err, e.ErrUnauthenticated)
	s.Empty(s.inner.CalledWith)
}

func (s *testSuite) TestUnknownToken() {
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, user.AccessToken("forged"))

	_, err := s.service.Run(ctx, input{})

	s.ErrorIs(err, e.ErrUnauthenticated)
	s.Empty(s.inner.CalledWith)
}

func (s *testSuite) TestExpiredToken() {
	token, _ := s.issue(user.User{ID: "user1", Role: access.RoleRegular})
	service := WithAuthentication[input, result](
		s.logger,
		s.tokens,
		s.revoker,
		func() time.Time { return Now.Add(2 * time.Hour) },
		s.inner,
	)
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, token)

	_, err := service.Run(ctx, input{})

	s.ErrorIs(err, user.ErrInvalidAccessToken)
	s.Empty(s.inner.CalledWith)
}

func (s *testSuite) TestRevokedToken() {
	token, claims := s.issue(user.User{ID: "user1", Role: access.RoleRegular})
	s.Require().Nil(s.revoker.Revoke(context.Background(), claims, Now))
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, token)

	_, err := s.service.Run(ctx, input{})

	s.ErrorIs(err, user.ErrAccessTokenRevoked)
	s.Empty(s.inner.CalledWith)
}

func (s *testSuite) TestRevokerError() {
	token, _ := s.issue(user.User{ID: "user1", Role: access.RoleRegular})
	s.revoker.ReturnError = errors.New("redis is down")
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, token)

	_, err := s.service.Run(ctx, input{})

	s.NotNil(err)
	s.Empty(s.inner.CalledWith)
	s.Equal(1, s.logger.CountByLevel(logging.ERROR))
}
