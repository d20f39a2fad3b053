package listpets

import (
	"context"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/pet"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPets(t *testing.T) {
	regular := access.Principal{SubjectID: "user1", Role: access.RoleRegular}
	admin := access.Principal{SubjectID: "root", Role: access.RoleAdmin}

	cases := []struct {
		id          string
		principal   access.Principal
		ownerID     user.ID
		limit       c.Optional[uint]
		expectedIDs []pet.ID
		expectedErr error
		total       uint
	}{
		{id: "regular own implicit", principal: regular, expectedIDs: []pet.ID{"a", "c"}, total: 2},
		{id: "regular own explicit", principal: regular, ownerID: "user1", expectedIDs: []pet.ID{"a", "c"}, total: 2},
		{id: "regular foreign", principal: regular, ownerID: "user2", expectedErr: e.ErrForbidden},
		{id: "admin all", principal: admin, expectedIDs: []pet.ID{"a", "b", "c"}, total: 3},
		{id: "admin by owner", principal: admin, ownerID: "user2", expectedIDs: []pet.ID{"b"}, total: 1},
		{id: "admin with limit", principal: admin, limit: c.NewOptional(uint(1), true), expectedIDs: []pet.ID{"a"}, total: 3},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			unitOfWork := uow.NewFakeUnitOfWork()
			unitOfWork.Pets().Pets = []pet.Pet{
				{ID: "a", OwnerID: "user1"},
				{ID: "b", OwnerID: "user2"},
				{ID: "c", OwnerID: "user1"},
			}
			service := New(logging.NewFakeLogger(), unitOfWork, access.NewGuard())

			result, err := service.Run(context.Background(), Input{
				Principal: testcase.principal,
				OwnerID:   testcase.ownerID,
				Limit:     testcase.limit,
			})
			if testcase.expectedErr != nil {
				assert.ErrorIs(t, err, testcase.expectedErr)
				assert.Empty(t, unitOfWork.Pets().ReadWith)
				return
			}
			require.Nil(t, err)
			ids := make([]pet.ID, 0, len(result.Pets))
			for _, p := range result.Pets {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, testcase.expectedIDs, ids)
			assert.Equal(t, testcase.total, result.TotalCount)
		})
	}
}
