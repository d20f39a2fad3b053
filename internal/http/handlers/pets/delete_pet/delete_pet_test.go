package deletepet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"petminder/internal/core/domain/access"
	"petminder/internal/core/domain/pet"
	service "petminder/internal/core/services/delete_pet"
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

func TestDeletePetHandler(t *testing.T) {
	cases := []struct {
		err            error
		expectedStatus int
	}{
		{err: nil, expectedStatus: http.StatusNoContent},
		{err: pet.ErrPetDoesNotExist, expectedStatus: http.StatusNotFound},
		{err: access.ErrNotOwner, expectedStatus: http.StatusForbidden},
	}
	for _, testcase := range cases {
		t.Run(http.StatusText(testcase.expectedStatus), func(t *testing.T) {
			service := &stubService{err: testcase.err}
			router := chi.NewRouter()
			router.Method("DELETE", "/pets/{petID}", New(service))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, httptest.NewRequest("DELETE", "/pets/rex", nil))

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, pet.ID("rex"), service.input.PetID)
		})
	}
}
