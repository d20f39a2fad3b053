package updatetask

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/task"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
	"time"
)

type Input struct {
	Principal           access.Principal
	TaskID              task.ID
	DoPetIDUpdate       bool
	PetID               c.Optional[pet.ID]
	DoTypeUpdate        bool
	Type                string
	DoTitleUpdate       bool
	Title               string
	DoIsCompletedUpdate bool
	IsCompleted         bool
	DoDueDateUpdate     bool
	DueDate             c.Optional[time.Time]
}

func (i Input) WithClaims(claims user.Claims) auth.Input {
	i.Principal = claims.Principal()
	return i
}

type Result struct {
	Task task.Task
}

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

	decision := s.guard.Authorize(input.Principal, t, access.OperationUpdate)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Access to task denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	if input.DoIsCompletedUpdate && t.IsCompleted && !input.IsCompleted {
		s.log.Info(ctx, "Completed task can't be reopened.", logging.Entry("input", input))
		return result, task.ErrTaskReopen
	}
	if input.DoPetIDUpdate {
		if err := pet.CheckReference(ctx, uow.Pets(), input.PetID, t.OwnerID); err != nil {
			if errors.Is(err, pet.ErrInvalidReference) {
				s.log.Info(ctx, "Task pet reference is not valid.", logging.Entry("input", input))
				return result, err
			}
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
			return result, err
		}
	}

	updatedTask, err := tasks.Update(ctx, task.UpdateInput{
		ID:                  input.TaskID,
		DoPetIDUpdate:       input.DoPetIDUpdate,
		PetID:               input.PetID,
		DoTypeUpdate:        input.DoTypeUpdate,
		Type:                input.Type,
		DoTitleUpdate:       input.DoTitleUpdate,
		Title:               input.Title,
		DoIsCompletedUpdate: input.DoIsCompletedUpdate,
		IsCompleted:         input.IsCompleted,
		DoDueDateUpdate:     input.DoDueDateUpdate,
		DueDate:             input.DueDate,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Task successfully updated.", logging.Entry("input", input))
	return Result{Task: updatedTask}, nil
}
