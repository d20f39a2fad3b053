package listreminders

import (
	"context"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
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
	Principal   access.Principal
	OwnerID     user.ID
	IsCompleted c.Optional[bool]
	Limit       c.Optional[uint]
	Offset      uint
}

func (i Input) WithClaims(claims user.Claims) auth.Input {
	i.Principal = claims.Principal()
	return i
}

type Result struct {
	Reminders  []reminder.View
	TotalCount uint
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
	scope := access.ScopeFor(input.Principal, string(input.OwnerID))
	decision := s.guard.Authorize(input.Principal, access.OwnerScope(scope), access.OperationRead)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Listing reminders denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	options := reminder.ReadOptions{
		OwnerIDEquals:     c.NewOptional(user.ID(scope), scope != ""),
		IsCompletedEquals: input.IsCompleted,
		Limit:             input.Limit,
		Offset:            input.Offset,
	}
	reminders, err := uow.Reminders().Read(ctx, options)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	count, err := uow.Reminders().Count(ctx, options)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	views, err := reminder.NewViews(reminders, s.now(), s.horizonCount)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Reminders: views, TotalCount: count}, nil
}
