package createreminder

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/reminder"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
	"time"
)

type Input struct {
	Principal         access.Principal
	ID                c.Optional[reminder.ID]
	OwnerID           user.ID
	PetID             c.Optional[pet.ID]
	Title             string
	Message           c.Optional[string]
	FireAt            time.Time
	IsRecurring       bool
	RecurrencePattern c.Optional[string]
	IsCompleted       bool
}

func (i Input) WithClaims(claims user.Claims) auth.Input {
	i.Principal = claims.Principal()
	return i
}

type Result struct {
	Reminder reminder.View
}

type service struct {
	log          logging.Logger
	unitOfWork   uow.UnitOfWork
	guard        access.Guard
	identity     c.IdentityGenerator
	horizonCount int
	now          func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	guard access.Guard,
	identity c.IdentityGenerator,
	horizonCount int,
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
		log:          log,
		unitOfWork:   unitOfWork,
		guard:        guard,
		identity:     identity,
		horizonCount: horizonCount,
		now:          now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	ownerID := user.ID(access.AssignOwner(input.Principal, string(input.OwnerID)))
	decision := s.guard.Authorize(input.Principal, access.OwnerScope(string(ownerID)), access.OperationCreate)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Reminder creation denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	candidate := reminder.Reminder{
		OwnerID:           ownerID,
		PetID:             input.PetID,
		Title:             input.Title,
		Message:           input.Message,
		FireAt:            input.FireAt,
		IsRecurring:       input.IsRecurring,
		RecurrencePattern: input.RecurrencePattern,
		IsCompleted:       input.IsCompleted,
	}
	if err := candidate.Validate(); err != nil {
		s.log.Info(ctx, "Reminder is not valid.", logging.Entry("input", input), logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	if err := user.CheckOwner(ctx, uow.Users(), ownerID); err != nil {
		if errors.Is(err, user.ErrOwnerDoesNotExist) {
			s.log.Info(ctx, "Reminder owner not found.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if err := pet.CheckReference(ctx, uow.Pets(), input.PetID, ownerID); err != nil {
		if errors.Is(err, pet.ErrInvalidReference) {
			s.log.Info(ctx, "Reminder pet reference is not valid.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	id := input.ID.Value
	if !input.ID.IsPresent {
		id = reminder.ID(s.identity.GenerateID())
	}
	now := s.now()
	rem, err := uow.Reminders().Create(ctx, reminder.CreateInput{
		ID:                id,
		OwnerID:           candidate.OwnerID,
		PetID:             candidate.PetID,
		Title:             candidate.Title,
		Message:           candidate.Message,
		FireAt:            candidate.FireAt,
		IsRecurring:       candidate.IsRecurring,
		RecurrencePattern: candidate.RecurrencePattern,
		IsCompleted:       candidate.IsCompleted,
		CreatedAt:         now,
	})
	if err != nil {
		if errors.Is(err, reminder.ErrReminderAlreadyExists) {
			s.log.Info(ctx, "Reminder already exists.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	view, err := reminder.NewView(rem, now, s.horizonCount)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Reminder successfully created.", logging.Entry("input", input), logging.Entry("reminderID", rem.ID))
	return Result{Reminder: view}, nil
}
