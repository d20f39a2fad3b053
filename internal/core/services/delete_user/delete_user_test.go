package deleteuser

import (
	"context"
	"petminder/internal/core/domain/access"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeleteUser(t *testing.T) {
	cases := []struct {
		id          string
		principal   access.Principal
		userID      user.ID
		expectedErr error
		remaining   int
	}{
		{id: "self", principal: access.Principal{SubjectID: "user1", Role: access.RoleRegular}, userID: "user1", remaining: 1},
		{id: "other", principal: access.Principal{SubjectID: "user1", Role: access.RoleRegular}, userID: "user2", expectedErr: e.ErrForbidden, remaining: 2},
		{id: "admin", principal: access.Principal{SubjectID: "root", Role: access.RoleAdmin}, userID: "user2", remaining: 1},
		{id: "missing", principal: access.Principal{SubjectID: "root", Role: access.RoleAdmin}, userID: "user3", expectedErr: e.ErrNotFound, remaining: 2},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			unitOfWork := uow.NewFakeUnitOfWork()
			unitOfWork.Users().Users = []user.User{{ID: "user1"}, {ID: "user2"}}
			service := New(logging.NewFakeLogger(), unitOfWork, access.NewGuard())

			_, err := service.Run(context.Background(), Input{Principal: testcase.principal, UserID: testcase.userID})

			if testcase.expectedErr != nil {
				assert.ErrorIs(t, err, testcase.expectedErr)
				assert.False(t, unitOfWork.Context.WasCommitCalled)
			} else {
				assert.Nil(t, err)
				assert.True(t, unitOfWork.Context.WasCommitCalled)
			}
			assert.Len(t, unitOfWork.Users().Users, testcase.remaining)
		})
	}
}
