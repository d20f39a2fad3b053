package pet

import (
	"fmt"

	e "petminder/internal/core/domain/errors"
)

var (
	ErrPetDoesNotExist  = fmt.Errorf("%w: pet does not exist", e.ErrNotFound)
	ErrPetAlreadyExists = fmt.Errorf("%w: pet with this id already exists", e.ErrInvalidRequest)
	ErrInvalidReference = fmt.Errorf("%w: referenced pet does not exist or belongs to another owner", e.ErrInvalidRequest)
)
