package task

import (
	"fmt"
	"time"

	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/user"
)

var (
	ErrTaskDoesNotExist  = fmt.Errorf("%w: task does not exist", e.ErrNotFound)
	ErrTaskAlreadyExists = fmt.Errorf("%w: task with this id already exists", e.ErrInvalidRequest)
	ErrTaskReopen        = fmt.Errorf("%w: completed task can't be reopened", e.ErrInvalidRequest)
)

type ID string

type Task struct {
	ID          ID
	OwnerID     user.ID
	PetID       c.Optional[pet.ID]
	Type        string
	Title       string
	IsCompleted bool
	DueDate     c.Optional[time.Time]
	CreatedAt   time.Time
}

func (t Task) Owner() string {
	return string(t.OwnerID)
}
