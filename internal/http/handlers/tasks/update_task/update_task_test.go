package updatetask

import (
	"context"
	"net/http"
	"net/http/httptest"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/task"
	service "petminder/internal/core/services/update_task"
	"strings"
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
	result.Task = task.Task{ID: input.TaskID, OwnerID: "user1"}
	return result, nil
}

func TestUpdateTaskHandler(t *testing.T) {
	cases := []struct {
		name           string
		body           string
		err            error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			name:           "complete",
			body:           `{"is_completed": true}`,
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{TaskID: "t1", DoIsCompletedUpdate: true, IsCompleted: true},
		},
		{
			name:           "reopen",
			body:           `{"is_completed": false}`,
			err:            task.ErrTaskReopen,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  &service.Input{TaskID: "t1", DoIsCompletedUpdate: true},
		},
		{
			name:           "set pet and due date",
			body:           `{"pet_id": "rex", "due_date": "2024-06-01T08:00:00Z"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				TaskID:          "t1",
				DoPetIDUpdate:   true,
				PetID:           c.NewOptional(pet.ID("rex"), true),
				DoDueDateUpdate: true,
				DueDate:         c.NewOptional(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), true),
			},
		},
		{
			name:           "clear pet and due date",
			body:           `{"do_pet_id_update": true, "pet_id": null, "do_due_date_update": true}`,
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{TaskID: "t1", DoPetIDUpdate: true, DoDueDateUpdate: true},
		},
		{
			name:           "title and type",
			body:           `{"title": "Vet", "type": ""}`,
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{TaskID: "t1", DoTitleUpdate: true, Title: "Vet", DoTypeUpdate: true},
		},
		{name: "empty title", body: `{"title": ""}`, expectedStatus: http.StatusBadRequest},
		{name: "malformed", body: `{"is_completed": "yes"}`, expectedStatus: http.StatusBadRequest},
	}
	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			service := &stubService{err: testcase.err}
			router := chi.NewRouter()
			router.Method("PATCH", "/tasks/{taskID}", New(service))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, httptest.NewRequest("PATCH", "/tasks/t1", strings.NewReader(testcase.body)))

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}
