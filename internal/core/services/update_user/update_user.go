package updateuser

import (
	"context"
	"errors"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
)

type Input struct {
	Principal         access.Principal
	UserID            user.ID
	DoEmailUpdate     bool
	Email             c.Email
	DoFirstNameUpdate bool
	FirstName         string
	DoLastNameUpdate  bool
	LastName          string
	DoPasswordUpdate  bool
	Password          user.RawPassword
	DoRoleUpdate      bool
	Role              access.Role
}

func (i Input) WithClaims(claims user.Claims) auth.Input {
	i.Principal = claims.Principal()
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	guard          access.Guard
	passwordHasher user.PasswordHasher
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	guard access.Guard,
	passwordHasher user.PasswordHasher,
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
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		guard:          guard,
		passwordHasher: passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	users := uow.Users()
	if err := users.Lock(ctx, input.UserID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	u, err := users.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserDoesNotExist) {
			s.log.Info(ctx, "User not found.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	decision := s.guard.Authorize(input.Principal, u, access.OperationUpdate)
	if !decision.IsAllowed() {
		s.log.Info(ctx, "Access to user denied.", logging.Entry("input", input), logging.Entry("reason", decision.Reason))
		return result, decision.Err()
	}
	if input.DoRoleUpdate && input.Role != u.Role && !input.Principal.IsAdmin() {
		s.log.Info(ctx, "Role change denied.", logging.Entry("input", input))
		return result, user.ErrRoleChangeForbidden
	}

	update := user.UpdateInput{
		ID:                input.UserID,
		DoEmailUpdate:     input.DoEmailUpdate,
		Email:             input.Email,
		DoFirstNameUpdate: input.DoFirstNameUpdate,
		FirstName:         input.FirstName,
		DoLastNameUpdate:  input.DoLastNameUpdate,
		LastName:          input.LastName,
		DoRoleUpdate:      input.DoRoleUpdate,
		Role:              input.Role,
	}
	if input.DoPasswordUpdate {
		hash, err := s.passwordHasher.HashPassword(input.Password)
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
			return result, err
		}
		update.DoPasswordHashUpdate = true
		update.PasswordHash = hash
	}

	updatedUser, err := users.Update(ctx, update)
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			s.log.Info(ctx, "User with this email already exists.", logging.Entry("input", input))
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "User successfully updated.", logging.Entry("input", input))
	return Result{User: updatedUser}, nil
}
