package updatepet

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
	Principal           access.Principal
	PetID               pet.ID
	DoNameUpdate        bool
	Name                string
	DoGenderUpdate      bool
	Gender              string
	DoTypeUpdate        bool
	Type                string
	DoDateOfBirthUpdate bool
	DateOfBirth         time.Time
	DoBreedUpdate       bool
	Breed               string
	DoWeightUpdate      bool
	Weight              float64
	DoHealthDataUpdate  bool
	HealthData          c.Optional[pet.HealthData]
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

	decision := s.guard.Authorize(input.Principal, p, access.OperationUpdate)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Access to pet denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}

	updatedPet, err := pets.Update(ctx, pet.UpdateInput{
		ID:                  input.PetID,
		DoNameUpdate:        input.DoNameUpdate,
		Name:                input.Name,
		DoGenderUpdate:      input.DoGenderUpdate,
		Gender:              input.Gender,
		DoTypeUpdate:        input.DoTypeUpdate,
		Type:                input.Type,
		DoDateOfBirthUpdate: input.DoDateOfBirthUpdate,
		DateOfBirth:         input.DateOfBirth,
		DoBreedUpdate:       input.DoBreedUpdate,
		Breed:               input.Breed,
		DoWeightUpdate:      input.DoWeightUpdate,
		Weight:              input.Weight,
		DoHealthDataUpdate:  input.DoHealthDataUpdate,
		HealthData:          input.HealthData,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Pet successfully updated.", logging.Entry("input", input))
	return Result{Pet: updatedPet}, nil
}
