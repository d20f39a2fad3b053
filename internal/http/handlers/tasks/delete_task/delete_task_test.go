package deletetask

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"petminder/internal/core/domain/access"
	"petminder/internal/core/domain/task"
	service "petminder/internal/core/services/delete_task"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

func TestDeleteTaskHandler(t *testing.T) {
	cases := []struct {
		err            error
		expectedStatus int
	}{
		{err: nil, expectedStatus: http.StatusNoContent},
		{err: task.ErrTaskDoesNotExist, expectedStatus: http.StatusNotFound},
		{err: access.ErrNotOwner, expectedStatus: http.StatusForbidden},
		{err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(http.StatusText(testcase.expectedStatus), func(t *testing.T) {
			service := &stubService{err: testcase.err}
			router := chi.NewRouter()
			router.Method("DELETE", "/tasks/{taskID}", New(service))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, httptest.NewRequest("DELETE", "/tasks/t1", nil))

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, task.ID("t1"), service.input.TaskID)
		})
	}
}
