package updatereminder

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
	Principal                 access.Principal
	ReminderID                reminder.ID
	DoPetIDUpdate             bool
	PetID                     c.Optional[pet.ID]
	DoTitleUpdate             bool
	Title                     string
	DoMessageUpdate           bool
	Message                   c.Optional[string]
	DoFireAtUpdate            bool
	FireAt                    time.Time
	DoIsRecurringUpdate       bool
	IsRecurring               bool
	DoRecurrencePatternUpdate bool
	RecurrencePattern         c.Optional[string]
	DoIsCompletedUpdate       bool
	IsCompleted               bool
}

func (i Input) WithClaims(claims user.Claims) auth.Input {
	i.Principal = claims.Principal()
	return i
}

// apply returns r with the requested changes, leaving r untouched.
func (i Input) apply(r reminder.Reminder) reminder.Reminder {
	if i.DoPetIDUpdate {
		r.PetID = i.PetID
	}
	if i.DoTitleUpdate {
		r.Title = i.Title
	}
	if i.DoMessageUpdate {
		r.Message = i.Message
	}
	if i.DoFireAtUpdate {
		r.FireAt = i.FireAt
	}
	if i.DoIsRecurringUpdate {
		r.IsRecurring = i.IsRecurring
	}
	if i.DoRecurrencePatternUpdate {
		r.RecurrencePattern = i.RecurrencePattern
	}
	if i.DoIsCompletedUpdate {
		r.IsCompleted = i.IsCompleted
	}
	return r
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

	if input.DoIsCompletedUpdate && rem.IsCompleted && !input.IsCompleted {
		s.log.Info(ctx, "Completed reminder can't be reopened.", logging.Entry("input", input))
		return result, reminder.ErrReminderReopen
	}
	updated := input.apply(rem)
	if err := updated.Validate(); err != nil {
		s.log.Info(ctx, "Reminder is not valid.", logging.Entry("input", input), logging.Entry("err", err))
		return result, err
	}
	if input.DoPetIDUpdate {
		if err := pet.CheckReference(ctx, uow.Pets(), input.PetID, rem.OwnerID); err != nil {
			if errors.Is(err, pet.ErrInvalidReference) {
				s.log.Info(ctx, "Reminder pet reference is not valid.", logging.Entry("input", input))
				return result, err
			}
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
			return result, err
		}
	}

	updatedReminder, err := reminders.Update(ctx, reminder.UpdateInput{
		ID:                        input.ReminderID,
		DoPetIDUpdate:             input.DoPetIDUpdate,
		PetID:                     input.PetID,
		DoTitleUpdate:             input.DoTitleUpdate,
		Title:                     input.Title,
		DoMessageUpdate:           input.DoMessageUpdate,
		Message:                   input.Message,
		DoFireAtUpdate:            input.DoFireAtUpdate,
		FireAt:                    input.FireAt,
		DoIsRecurringUpdate:       input.DoIsRecurringUpdate,
		IsRecurring:               input.IsRecurring,
		DoRecurrencePatternUpdate: input.DoRecurrencePatternUpdate,
		RecurrencePattern:         input.RecurrencePattern,
		DoIsCompletedUpdate:       input.DoIsCompletedUpdate,
		IsCompleted:               input.IsCompleted,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	view, err := reminder.NewView(updatedReminder, s.now(), s.horizonCount)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully updated.",
		logging.Entry("input", input),
		logging.Entry("reminder", updatedReminder),
	)
	return Result{Reminder: view}, nil
}
