package createtask

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
	Principal   access.Principal
	ID          c.Optional[task.ID]
	OwnerID     user.ID
	PetID       c.Optional[pet.ID]
	Type        string
	Title       string
	IsCompleted bool
	DueDate     c.Optional[time.Time]
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
	identity   c.IdentityGenerator
	now        func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	guard access.Guard,
	identity c.IdentityGenerator,
	now func() time.Time,
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
	if identity == nil {
		panic(e.NewNilArgumentError("identity"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
		guard:      guard,
		identity:   identity,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	ownerID := user.ID(access.AssignOwner(input.Principal, string(input.OwnerID)))
	decision := s.guard.Authorize(input.Principal, access.OwnerScope(string(ownerID)), access.OperationCreate)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Task creation denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	if err := s.checkReferences(ctx, uow.Users(), uow.Pets(), ownerID, input.PetID); err != nil {
		if errors.Is(err, e.ErrInvalidRequest) {
			s.log.Info(ctx, "Task references are not valid.", logging.Entry("input", input), logging.Entry("err", err))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	id := input.ID.Value
	if !input.ID.IsPresent {
		id = task.ID(s.identity.GenerateID())
	}
	t, err := uow.Tasks().Create(ctx, task.CreateInput{
		ID:          id,
		OwnerID:     ownerID,
		PetID:       input.PetID,
		Type:        input.Type,
		Title:       input.Title,
		IsCompleted: input.IsCompleted,
		DueDate:     input.DueDate,
		CreatedAt:   s.now(),
	})
	if err != nil {
		if errors.Is(err, task.ErrTaskAlreadyExists) {
			s.log.Info(ctx, "Task already exists.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Task successfully created.", logging.Entry("input", input), logging.Entry("taskID", t.ID))
	return Result{Task: t}, nil
}

func (s *service) checkReferences(
	ctx context.Context,
	users user.Repository,
	pets pet.Repository,
	ownerID user.ID,
	petID c.Optional[pet.ID],
) error {
	if err := user.CheckOwner(ctx, users, ownerID); err != nil {
		return err
	}
	return pet.CheckReference(ctx, pets, petID, ownerID)
}
