package auth

import (
	"context"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"time"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

// Input is implemented by every input of a service that requires a verified
// caller.
type Input interface {
	WithClaims(claims user.Claims) Input
}

type service[T Input, S any] struct {
	log       logging.Logger
	validator user.TokenValidator
	revoker   user.TokenRevoker
	now       func() time.Time
	inner     services.Service[T, S]
}

func WithAuthentication[T Input, S any](
	log logging.Logger,
	validator user.TokenValidator,
	revoker user.TokenRevoker,
	now func() time.Time,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if validator == nil {
		panic(e.NewNilArgumentError("validator"))
	}
	if revoker == nil {
		panic(e.NewNilArgumentError("revoker"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		log:       log,
		validator: validator,
		revoker:   revoker,
		now:       now,
		inner:     inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	token, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.AccessToken)
	if !ok || token == "" {
		return result, user.ErrInvalidAccessToken
	}
	claims, err := s.validator.ValidateToken(token, s.now())
	if err != nil {
		s.log.Info(ctx, "Access token rejected.", logging.Entry("err", err))
		return result, err
	}
	isRevoked, err := s.revoker.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("tokenID", claims.TokenID))
		return result, err
	}
	if isRevoked {
		s.log.Info(ctx, "Revoked access token used.", logging.Entry("tokenID", claims.TokenID))
		return result, user.ErrAccessTokenRevoked
	}
	return s.inner.Run(ctx, input.WithClaims(claims).(T))
}
