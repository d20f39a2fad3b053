package listusers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/user"
	service "petminder/internal/core/services/list_users"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Users = []user.User{{ID: "user1", Role: access.RoleAdmin}, {ID: "user2", Role: access.RoleRegular}}
	result.TotalCount = 2
	return result, nil
}

func TestListUsersHandler(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{url: "/users", expectedStatus: http.StatusOK, expectedInput: &service.Input{}},
		{
			url:            "/users?limit=10&offset=20",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Limit: c.NewOptional[uint](10, true), Offset: 20},
		},
		{url: "/users?limit=1000", expectedStatus: http.StatusBadRequest},
		{url: "/users?offset=-1", expectedStatus: http.StatusBadRequest},
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

func TestListUsersHandlerForbidden(t *testing.T) {
	rr := httptest.NewRecorder()

	New(&stubService{err: access.ErrNotOwner}).ServeHTTP(rr, httptest.NewRequest("GET", "/users", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
