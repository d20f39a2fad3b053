package response

import (
	"petminder/internal/core/domain/reminder"
	"time"
)

type Reminder struct {
	ID                string      `json:"id"`
	OwnerID           string      `json:"owner_id"`
	PetID             *string     `json:"pet_id"`
	Title             string      `json:"title"`
	Message           *string     `json:"message"`
	FireAt            time.Time   `json:"fire_at"`
	IsRecurring       bool        `json:"is_recurring"`
	RecurrencePattern *string     `json:"recurrence_pattern"`
	IsCompleted       bool        `json:"is_completed"`
	IsDue             bool        `json:"is_due"`
	NextOccurrences   []time.Time `json:"next_occurrences"`
	CreatedAt         time.Time   `json:"created_at"`
}

func (r *Reminder) FromDomainType(view reminder.View) {
	rem := view.Reminder
	r.ID = string(rem.ID)
	r.OwnerID = string(rem.OwnerID)
	if rem.PetID.IsPresent {
		petID := string(rem.PetID.Value)
		r.PetID = &petID
	}
	r.Title = rem.Title
	r.Message = rem.Message.Pointer()
	r.FireAt = rem.FireAt
	r.IsRecurring = rem.IsRecurring
	r.RecurrencePattern = rem.RecurrencePattern.Pointer()
	r.IsCompleted = rem.IsCompleted
	r.IsDue = view.IsDue
	r.NextOccurrences = nonNil(view.NextOccurrences)
	r.CreatedAt = rem.CreatedAt
}
