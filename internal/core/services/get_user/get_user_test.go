package getuser

import (
	"context"
	"petminder/internal/core/domain/access"
	"petminder/internal/core/domain/logging"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	unitOfWork := uow.NewFakeUnitOfWork()
	unitOfWork.Users().Users = []user.User{
		{ID: "user1", Email: "one@example.com", Role: access.RoleRegular},
		{ID: "user2", Email: "two@example.com", Role: access.RoleRegular},
	}
	guard := access.NewFakeGuard()
	service := New(logging.NewFakeLogger(), unitOfWork, guard)

	regular := access.Principal{SubjectID: "user1", Role: access.RoleRegular}
	admin := access.Principal{SubjectID: "root", Role: access.RoleAdmin}

	cases := []struct {
		id          string
		principal   access.Principal
		userID      user.ID
		expectedID  user.ID
		expectedErr error
	}{
		{id: "self by id", principal: regular, userID: "user1", expectedID: "user1"},
		{id: "self implicit", principal: regular, userID: "", expectedID: "user1"},
		{id: "other user", principal: regular, userID: "user2", expectedErr: access.ErrNotOwner},
		{id: "admin reads other", principal: admin, userID: "user2", expectedID: "user2"},
		{id: "missing", principal: admin, userID: "user3", expectedErr: user.ErrUserDoesNotExist},
		{id: "missing for regular", principal: regular, userID: "user3", expectedErr: user.ErrUserDoesNotExist},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			result, err := service.Run(context.Background(), Input{Principal: testcase.principal, UserID: testcase.userID})
			if testcase.expectedErr != nil {
				assert.ErrorIs(t, err, testcase.expectedErr)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, testcase.expectedID, result.User.ID)
		})
	}
	assert.Equal(t, 4, guard.CallCount())
}
