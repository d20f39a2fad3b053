package completereminder

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/reminder"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
	"time"
)

type Input struct {
	Principal  access.Principal
	ReminderID reminder.ID
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
	horizonCount int
	now          func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	guard access.Guard,
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
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:          log,
		unitOfWork:   unitOfWork,
		guard:        guard,
		horizonCount: horizonCount,
		now:          now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	reminders := uow.Reminders()
	if err := reminders.Lock(ctx, input.ReminderID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	rem, err := reminders.GetByID(ctx, input.ReminderID)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderDoesNotExist) {
			s.log.Info(ctx, "Reminder not found.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	decision := s.guard.Authorize(input.Principal, rem, access.OperationUpdate)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Access to reminder denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	if rem.IsCompleted {
		s.log.Info(ctx, "Reminder is already completed.", logging.Entry("input", input))
		result.Reminder, err = reminder.NewView(rem, s.now(), s.horizonCount)
		return result, err
	}

	rem, err = reminders.Update(ctx, reminder.UpdateInput{
		ID:                  rem.ID,
		DoIsCompletedUpdate: true,
		IsCompleted:         true,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	view, err := reminder.NewView(rem, s.now(), s.horizonCount)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Reminder successfully completed.", logging.Entry("input", input))
	return Result{Reminder: view}, nil
}
