package reminder

import (
	"fmt"

	e "petminder/internal/core/domain/errors"
)

var (
	ErrReminderDoesNotExist  = fmt.Errorf("%w: reminder does not exist", e.ErrNotFound)
	ErrReminderAlreadyExists = fmt.Errorf("%w: reminder with this id already exists", e.ErrInvalidRequest)
	ErrTitleRequired         = fmt.Errorf("%w: reminder title must not be empty", e.ErrInvalidRequest)
	ErrReminderReopen        = fmt.Errorf("%w: completed reminder can't be reopened", e.ErrInvalidRequest)
)
