package reminder

import (
	"strings"
	"time"

	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/recurrence"
	"petminder/internal/core/domain/user"
)

type ID string

type Reminder struct {
	ID                ID
	OwnerID           user.ID
	PetID             c.Optional[pet.ID]
	Title             string
	Message           c.Optional[string]
	FireAt            time.Time
	IsRecurring       bool
	RecurrencePattern c.Optional[string]
	IsCompleted       bool
	CreatedAt         time.Time
	PublishedFireAt   c.Optional[time.Time]
}

func (r Reminder) Owner() string {
	return string(r.OwnerID)
}

// Validate checks the fields a reminder must satisfy before it is stored.
func (r *Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrTitleRequired
	}
	return recurrence.ValidateSchedule(r.FireAt, r.IsRecurring, r.RecurrencePattern.Value)
}

func (r *Reminder) IsDue(now time.Time) bool {
	return recurrence.ComputeIsDue(r.FireAt, r.IsCompleted, now)
}

func (r *Reminder) State(now time.Time) recurrence.State {
	return recurrence.StateOf(r.FireAt, r.IsCompleted, now)
}

// View is a reminder as returned to clients: stored fields plus the values
// derived at the moment of reading.
type View struct {
	Reminder        Reminder
	IsDue           bool
	NextOccurrences []time.Time
}

func NewView(r Reminder, now time.Time, horizonCount int) (View, error) {
	occurrences, err := recurrence.ComputeNextOccurrences(
		r.FireAt,
		r.IsRecurring,
		r.RecurrencePattern.Value,
		horizonCount,
	)
	if err != nil {
		return View{}, err
	}
	return View{
		Reminder:        r,
		IsDue:           r.IsDue(now),
		NextOccurrences: occurrences,
	}, nil
}

func NewViews(reminders []Reminder, now time.Time, horizonCount int) ([]View, error) {
	views := make([]View, 0, len(reminders))
	for _, r := range reminders {
		view, err := NewView(r, now, horizonCount)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
