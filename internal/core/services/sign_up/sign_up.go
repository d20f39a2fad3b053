package signup

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"time"
)

type Input struct {
	Email     c.Email
	FirstName string
	LastName  string
	Password  user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "sign-up::" + string(i.Email)
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	identity       c.IdentityGenerator
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	identity c.IdentityGenerator,
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
	if identity == nil {
		panic(e.NewNilArgumentError("identity"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		identity:       identity,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	defer uow.Rollback(ctx)

	u, err := uow.Users().Create(ctx, user.CreateInput{
		ID:           user.ID(s.identity.GenerateID()),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		Role:         access.RoleRegular,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			s.log.Info(ctx, "User with this email already exists.", logging.Entry("email", input.Email))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	s.log.Info(ctx, "User successfully signed up.", logging.Entry("userID", u.ID), logging.Entry("email", u.Email))
	return Result{User: u}, nil
}
