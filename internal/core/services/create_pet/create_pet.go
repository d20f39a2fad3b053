package createpet

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/pet"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
	"time"
)

type Input struct {
	Principal   access.Principal
	ID          c.Optional[pet.ID]
	OwnerID     user.ID
	Name        string
	Gender      string
	Type        string
	DateOfBirth time.Time
	Breed       string
	Weight      float64
	HealthData  c.Optional[pet.HealthData]
}

func (i Input) WithClaims(claims user.Claims) auth.Input {
	i.Principal = claims.Principal()
	return i
}

type Result struct {
	Pet pet.Pet
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
		s.log.Info(ctx, "Pet creation denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	if err := user.CheckOwner(ctx, uow.Users(), ownerID); err != nil {
		if errors.Is(err, user.ErrOwnerDoesNotExist) {
			s.log.Info(ctx, "Pet owner not found.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	id := input.ID.Value
	if !input.ID.IsPresent {
		id = pet.ID(s.identity.GenerateID())
	}
	p, err := uow.Pets().Create(ctx, pet.CreateInput{
		ID:          id,
		OwnerID:     ownerID,
		Name:        input.Name,
		Gender:      input.Gender,
		Type:        input.Type,
		DateOfBirth: input.DateOfBirth,
		Breed:       input.Breed,
		Weight:      input.Weight,
		HealthData:  input.HealthData,
		CreatedAt:   s.now(),
	})
	if err != nil {
		if errors.Is(err, pet.ErrPetAlreadyExists) {
			s.log.Info(ctx, "Pet already exists.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Pet successfully created.", logging.Entry("input", input), logging.Entry("petID", p.ID))
	return Result{Pet: p}, nil
}
