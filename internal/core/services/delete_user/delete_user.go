package deleteuser

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
)

type Input struct {
	Principal access.Principal
	UserID    user.ID
}

func (i Input) WithClaims(claims user.Claims) auth.Input {
	i.Principal = claims.Principal()
	return i
}

type Result struct{}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	guard      access.Guard
}

// New returns a service deleting a user account. Pets, tasks and reminders of
// the user are removed by the storage layer together with the account.
func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	guard access.Guard,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if guard == nil {
		panic(e.NewNilArgumentError("guard"))
	}
	return &service{log: log, unitOfWork: unitOfWork, guard: guard}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	users := uow.Users()
	if err := users.Lock(ctx, input.UserID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	u, err := users.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserDoesNotExist) {
			s.log.Info(ctx, "User not found.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	decision := s.guard.Authorize(input.Principal, u, access.OperationDelete)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Access to user denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	if err := users.Delete(ctx, input.UserID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "User successfully deleted.", logging.Entry("input", input))
	return result, nil
}
