package response

import (
	"petminder/internal/core/domain/task"
	"time"
)

type Task struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	PetID       *string    `json:"pet_id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (t *Task) FromDomainType(dt task.Task) {
	t.ID = string(dt.ID)
	t.OwnerID = string(dt.OwnerID)
	if dt.PetID.IsPresent {
		petID := string(dt.PetID.Value)
		t.PetID = &petID
	}
	t.Type = dt.Type
	t.Title = dt.Title
	t.IsCompleted = dt.IsCompleted
	t.DueDate = dt.DueDate.Pointer()
	t.CreatedAt = dt.CreatedAt
}
