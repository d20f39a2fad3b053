package deletepet

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
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
	PetID     pet.ID
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

	pets := uow.Pets()
	if err := pets.Lock(ctx, input.PetID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	p, err := pets.GetByID(ctx, input.PetID)
	if err != nil {
		if errors.Is(err, pet.ErrPetDoesNotExist) {
			s.log.Info(ctx, "Pet not found.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	decision := s.guard.Authorize(input.Principal, p, access.OperationDelete)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Access to pet denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	// Tasks and reminders referencing the pet keep existing without it.
	if err := pets.Delete(ctx, input.PetID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Pet successfully deleted.", logging.Entry("input", input))
	return result, nil
}
