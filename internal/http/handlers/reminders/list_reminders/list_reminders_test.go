package listreminders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/reminder"
	service "petminder/internal/core/services/list_reminders"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var Reminders = []reminder.View{
	{
		Reminder: reminder.Reminder{
			ID:      "r1",
			OwnerID: "user1",
			Title:   "Walk",
			FireAt:  time.Date(2020, 1, 2, 1, 1, 1, 0, time.UTC),
		},
		IsDue: true,
	},
	{
		Reminder: reminder.Reminder{
			ID:          "r2",
			OwnerID:     "user1",
			Title:       "Feed",
			FireAt:      time.Date(2020, 1, 3, 1, 1, 1, 0, time.UTC),
			IsCompleted: true,
		},
	},
}

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Reminders = Reminders
	result.TotalCount = uint(len(Reminders))
	return result, nil
}

func TestListRemindersHandler(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{url: "/reminders", expectedStatus: http.StatusOK, expectedInput: &service.Input{}},
		{
			url:            "/reminders?is_completed=true",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{IsCompleted: c.NewOptional(true, true)},
		},
		{
			url:            "/reminders?owner_id=user2",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OwnerID: "user2"},
		},
		{
			url:            "/reminders?limit=0",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Limit: c.NewOptional[uint](0, true)},
		},
		{
			url:            "/reminders?owner_id=user1&is_completed=0&limit=20&offset=40",
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				OwnerID:     "user1",
				IsCompleted: c.NewOptional(false, true),
				Limit:       c.NewOptional[uint](20, true),
				Offset:      40,
			},
		},
		{url: "/reminders?is_completed=aaa", expectedStatus: http.StatusBadRequest},
		{url: "/reminders?limit=101", expectedStatus: http.StatusBadRequest},
		{url: "/reminders?offset=asd", expectedStatus: http.StatusBadRequest},
	}
	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			service := &stubService{}
			rr := httptest.NewRecorder()

			New(service).ServeHTTP(rr, httptest.NewRequest("GET", testcase.url, nil))

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}

func TestListRemindersHandlerForbidden(t *testing.T) {
	rr := httptest.NewRecorder()

	New(&stubService{err: access.ErrNotOwner}).ServeHTTP(rr, httptest.NewRequest("GET", "/reminders?owner_id=user2", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
