package listpets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/pet"
	service "petminder/internal/core/services/list_pets"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	pets  []pet.Pet
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Pets = s.pets
	result.TotalCount = uint(len(s.pets))
	return result, nil
}

func TestListPetsHandler(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{url: "/pets", expectedStatus: http.StatusOK, expectedInput: &service.Input{}},
		{
			url:            "/pets?owner_id=user2",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OwnerID: "user2"},
		},
		{
			url:            "/pets?owner_id=user2&limit=5&offset=10",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OwnerID: "user2", Limit: c.NewOptional[uint](5, true), Offset: 10},
		},
		{url: "/pets?limit=101", expectedStatus: http.StatusBadRequest},
		{url: "/pets?offset=x", expectedStatus: http.StatusBadRequest},
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

func TestListPetsHandlerEmptyResult(t *testing.T) {
	rr := httptest.NewRecorder()

	New(&stubService{}).ServeHTTP(rr, httptest.NewRequest("GET", "/pets", nil))

	var result map[string]interface{}
	require.Nil(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, []interface{}{}, result["pets"])
	assert.Equal(t, float64(0), result["total_count"])
}

func TestListPetsHandlerForeignOwner(t *testing.T) {
	rr := httptest.NewRecorder()

	New(&stubService{err: access.ErrNotOwner}).ServeHTTP(rr, httptest.NewRequest("GET", "/pets?owner_id=user2", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
