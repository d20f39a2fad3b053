package deletetask

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/task"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
)

type Input struct {
	Principal access.Principal
	TaskID    task.ID
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

	tasks := uow.Tasks()
	if err := tasks.Lock(ctx, input.TaskID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	t, err := tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskDoesNotExist) {
			s.log.Info(ctx, "Task not found.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	decision := s.guard.Authorize(input.Principal, t, access.OperationDelete)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Access to task denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	if err := tasks.Delete(ctx, input.TaskID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Task successfully deleted.", logging.Entry("input", input))
	return result, nil
}
