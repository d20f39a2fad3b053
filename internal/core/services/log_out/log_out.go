package logout

import (
	"context"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"petminder/internal/core/services/auth"
	"time"
)

type Input struct {
	Claims user.Claims
}

func (i Input) WithClaims(claims user.Claims) auth.Input {
	i.Claims = claims
	return i
}

type Result struct{}

type service struct {
	log     logging.Logger
	revoker user.TokenRevoker
	now     func() time.Time
}

func New(
	log logging.Logger,
	revoker user.TokenRevoker,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if revoker == nil {
		panic(e.NewNilArgumentError("revoker"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, revoker: revoker, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.revoker.Revoke(ctx, input.Claims, s.now()); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("tokenID", input.Claims.TokenID))
		return result, err
	}
	s.log.Info(
		ctx,
		"User successfully logged out.",
		logging.Entry("userID", input.Claims.SubjectID),
		logging.Entry("tokenID", input.Claims.TokenID),
	)
	return result, nil
}
