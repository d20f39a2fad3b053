package getreminder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/reminder"
	service "petminder/internal/core/services/get_reminder"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	fireAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	result.Reminder = reminder.View{
		Reminder: reminder.Reminder{
			ID:                input.ReminderID,
			OwnerID:           "user1",
			Title:             "Walk",
			FireAt:            fireAt,
			IsRecurring:       true,
			RecurrencePattern: c.NewOptional("daily", true),
			CreatedAt:         fireAt.Add(-time.Hour),
		},
		IsDue:           true,
		NextOccurrences: []time.Time{fireAt.AddDate(0, 0, 1), fireAt.AddDate(0, 0, 2)},
	}
	return result, nil
}

func TestGetReminderHandler(t *testing.T) {
	cases := []struct {
		err            error
		expectedStatus int
	}{
		{err: nil, expectedStatus: http.StatusOK},
		{err: reminder.ErrReminderDoesNotExist, expectedStatus: http.StatusNotFound},
		{err: access.ErrNotOwner, expectedStatus: http.StatusForbidden},
	}
	for _, testcase := range cases {
		t.Run(http.StatusText(testcase.expectedStatus), func(t *testing.T) {
			service := &stubService{err: testcase.err}
			router := chi.NewRouter()
			router.Method("GET", "/reminders/{reminderID}", New(service))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, httptest.NewRequest("GET", "/reminders/r1", nil))

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, reminder.ID("r1"), service.input.ReminderID)
		})
	}
}

func TestGetReminderHandlerResponse(t *testing.T) {
	router := chi.NewRouter()
	router.Method("GET", "/reminders/{reminderID}", New(&stubService{}))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest("GET", "/reminders/r1", nil))

	assert.JSONEq(t, `{
		"reminder": {
			"id": "r1",
			"owner_id": "user1",
			"pet_id": null,
			"title": "Walk",
			"message": null,
			"fire_at": "2024-06-01T08:00:00Z",
			"is_recurring": true,
			"recurrence_pattern": "daily",
			"is_completed": false,
			"is_due": true,
			"next_occurrences": ["2024-06-02T08:00:00Z", "2024-06-03T08:00:00Z"],
			"created_at": "2024-06-01T07:00:00Z"
		}
	}`, rr.Body.String())
}
