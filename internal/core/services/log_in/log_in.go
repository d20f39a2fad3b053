package login

import (
	"context"
	"errors"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"time"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "log-in::" + string(i.Email)
}

type Result struct {
	User   user.User
	Token  user.AccessToken
	Claims user.Claims
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	tokenIssuer    user.TokenIssuer
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	tokenIssuer user.TokenIssuer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if tokenIssuer == nil {
		panic(e.NewNilArgumentError("tokenIssuer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		tokenIssuer:    tokenIssuer,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	defer uow.Rollback(ctx)

	u, err := uow.Users().GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserDoesNotExist) {
			s.log.Info(ctx, "User not found.", logging.Entry("email", input.Email))
			return result, user.ErrInvalidCredentials
		}
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		s.log.Info(ctx, "Invalid password.", logging.Entry("email", input.Email))
		return result, user.ErrInvalidCredentials
	}

	token, claims, err := s.tokenIssuer.IssueToken(u, s.now())
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	s.log.Info(ctx, "User successfully logged in.", logging.Entry("userID", u.ID), logging.Entry("tokenID", claims.TokenID))
	return Result{User: u, Token: token, Claims: claims}, nil
}
