package user

import (
	"fmt"

	e "petminder/internal/core/domain/errors"
)

var (
	ErrUserDoesNotExist    = fmt.Errorf("%w: user does not exist", e.ErrNotFound)
	ErrEmailAlreadyExists  = fmt.Errorf("%w: email already exists", e.ErrInvalidRequest)
	ErrUserAlreadyExists   = fmt.Errorf("%w: user with this id already exists", e.ErrInvalidRequest)
	ErrInvalidCredentials  = fmt.Errorf("%w: invalid credentials", e.ErrUnauthenticated)
	ErrInvalidAccessToken  = fmt.Errorf("%w: invalid access token", e.ErrUnauthenticated)
	ErrAccessTokenRevoked  = fmt.Errorf("%w: access token has been revoked", e.ErrUnauthenticated)
	ErrRoleChangeForbidden = fmt.Errorf("%w: only administrators may change roles", e.ErrForbidden)
	ErrOwnerDoesNotExist   = fmt.Errorf("%w: owner does not exist", e.ErrInvalidRequest)
)
