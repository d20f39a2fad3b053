package createtask

import (
	"context"
	"net/http"
	"net/http/httptest"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/task"
	service "petminder/internal/core/services/create_task"
	"strings"
	"testing"
	"time"

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
	result.Task = task.Task{ID: "t1", OwnerID: "user1", PetID: input.PetID, Title: input.Title, DueDate: input.DueDate}
	return result, nil
}

func TestCreateTaskHandler(t *testing.T) {
	cases := []struct {
		name           string
		body           string
		err            error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			name:           "minimal",
			body:           `{"title": "Buy food"}`,
			expectedStatus: http.StatusCreated,
			expectedInput:  &service.Input{Title: "Buy food"},
		},
		{
			name:           "full",
			body:           `{"id": "t1", "owner_id": "user2", "pet_id": "rex", "type": "shopping", "title": "Buy food", "is_completed": true, "due_date": "2024-06-01T10:00:00+02:00"}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{
				ID:          c.NewOptional(task.ID("t1"), true),
				OwnerID:     "user2",
				PetID:       c.NewOptional(pet.ID("rex"), true),
				Type:        "shopping",
				Title:       "Buy food",
				IsCompleted: true,
				DueDate:     c.NewOptional(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), true),
			},
		},
		{
			name:           "foreign pet",
			body:           `{"title": "Walk", "pet_id": "tom"}`,
			err:            pet.ErrInvalidReference,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  &service.Input{Title: "Walk", PetID: c.NewOptional(pet.ID("tom"), true)},
		},
		{
			name:           "foreign owner",
			body:           `{"title": "Walk", "owner_id": "user2"}`,
			err:            access.ErrNotOwner,
			expectedStatus: http.StatusForbidden,
			expectedInput:  &service.Input{Title: "Walk", OwnerID: "user2"},
		},
		{name: "missing title", body: `{"type": "walk"}`, expectedStatus: http.StatusBadRequest},
		{name: "empty pet id", body: `{"title": "Walk", "pet_id": ""}`, expectedStatus: http.StatusBadRequest},
		{name: "invalid due date", body: `{"title": "Walk", "due_date": "tomorrow"}`, expectedStatus: http.StatusBadRequest},
	}
	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			service := &stubService{err: testcase.err}
			rr := httptest.NewRecorder()

			New(service).ServeHTTP(rr, httptest.NewRequest("POST", "/tasks", strings.NewReader(testcase.body)))

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}
