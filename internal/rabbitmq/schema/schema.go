package schema

import (
	"encoding/json"
	"time"
)

// DueReminder is published once per fire time of a reminder.
type DueReminder struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"owner_id"`
	PetID             *string   `json:"pet_id"`
	Title             string    `json:"title"`
	Message           *string   `json:"message"`
	FireAt            time.Time `json:"fire_at"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern *string   `json:"recurrence_pattern"`
	PublishedAt       time.Time `json:"published_at"`
}

func (r *DueReminder) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *DueReminder) Unmarshal(data []byte) error {
	return json.Unmarshal(data, r)
}
