package pet

import (
	"context"
	"errors"
	"testing"

	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestCurrentWeight(t *testing.T) {
	cases := []struct {
		id       string
		history  []float64
		expected float64
	}{
		{id: "nil history", history: nil, expected: 0},
		{id: "empty history", history: []float64{}, expected: 0},
		{id: "single", history: []float64{4.2}, expected: 4.2},
		{id: "latest wins", history: []float64{3.1, 3.8, 3.5}, expected: 3.5},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			h := HealthData{WeightHistory: testcase.history}
			assert.Equal(t, testcase.expected, h.CurrentWeight())
		})
	}
}

func TestCheckReference(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeRepository()
	repo.Pets = []Pet{{ID: "pet-1", OwnerID: "user1"}}

	assert.Nil(t, CheckReference(ctx, repo, c.Optional[ID]{}, "user1"))
	assert.Nil(t, CheckReference(ctx, repo, c.NewOptional(ID("pet-1"), true), "user1"))

	err := CheckReference(ctx, repo, c.NewOptional(ID("pet-1"), true), "user2")
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.ErrorIs(t, err, e.ErrInvalidRequest)

	err = CheckReference(ctx, repo, c.NewOptional(ID("missing"), true), "user1")
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.False(t, errors.Is(err, e.ErrNotFound))

	storageErr := errors.New("connection reset")
	repo.ReturnError = storageErr
	assert.ErrorIs(t, CheckReference(ctx, repo, c.NewOptional(ID("pet-1"), true), "user1"), storageErr)
}
