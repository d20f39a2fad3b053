package getuser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"petminder/internal/core/domain/access"
	"petminder/internal/core/domain/user"
	service "petminder/internal/core/services/get_user"
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
	if s.err != nil {
		return result, s.err
	}
	id := input.UserID
	if id == "" {
		id = "me"
	}
	result.User = user.User{ID: id, Email: "test@example.com", Role: access.RoleRegular}
	return result, nil
}

func newRouter(h *Handler) http.Handler {
	router := chi.NewRouter()
	router.Method("GET", "/users/me", h)
	router.Method("GET", "/users/{userID}", h)
	return router
}

func TestGetUserHandler(t *testing.T) {
	cases := []struct {
		url            string
		err            error
		expectedStatus int
		expectedUserID user.ID
	}{
		{url: "/users/user1", expectedStatus: http.StatusOK, expectedUserID: "user1"},
		{url: "/users/me", expectedStatus: http.StatusOK, expectedUserID: ""},
		{url: "/users/user2", err: access.ErrNotOwner, expectedStatus: http.StatusForbidden, expectedUserID: "user2"},
		{url: "/users/nope", err: user.ErrUserDoesNotExist, expectedStatus: http.StatusNotFound, expectedUserID: "nope"},
	}
	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			service := &stubService{err: testcase.err}
			rr := httptest.NewRecorder()

			newRouter(New(service)).ServeHTTP(rr, httptest.NewRequest("GET", testcase.url, nil))

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedUserID, service.input.UserID)
		})
	}
}
