package listpets

import (
	"context"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/pet"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
)

type Input struct {
	Principal access.Principal
	// Empty OwnerID lists the caller's own pets, or every pet for admins.
	OwnerID user.ID
	Limit   c.Optional[uint]
	Offset  uint
}

func (i Input) WithClaims(claims user.Claims) auth.Input {
	i.Principal = claims.Principal()
	return i
}

type Result struct {
	Pets       []pet.Pet
	TotalCount uint
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
	scope := access.ScopeFor(input.Principal, string(input.OwnerID))
	decision := s.guard.Authorize(input.Principal, access.OwnerScope(scope), access.OperationRead)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Listing pets denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	options := pet.ReadOptions{
		OwnerIDEquals: c.NewOptional(user.ID(scope), scope != ""),
		Limit:         input.Limit,
		Offset:        input.Offset,
	}
	pets, err := uow.Pets().Read(ctx, options)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	count, err := uow.Pets().Count(ctx, options)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Pets: pets, TotalCount: count}, nil
}
