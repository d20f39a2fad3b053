package listusers

import (
	"context"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/logging"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() (*uow.FakeUnitOfWork, *Input) {
	unitOfWork := uow.NewFakeUnitOfWork()
	unitOfWork.Users().Users = []user.User{
		{ID: "user1", Role: access.RoleRegular},
		{ID: "user2", Role: access.RoleRegular},
		{ID: "root", Role: access.RoleAdmin},
	}
	return unitOfWork, &Input{}
}

func TestListUsersAsAdmin(t *testing.T) {
	unitOfWork, input := setup()
	service := New(logging.NewFakeLogger(), unitOfWork, access.NewGuard())
	input.Principal = access.Principal{SubjectID: "root", Role: access.RoleAdmin}
	input.Limit = c.NewOptional(uint(2), true)
	input.Offset = 1

	result, err := service.Run(context.Background(), *input)

	require.Nil(t, err)
	assert.Equal(t, uint(3), result.TotalCount)
	require.Len(t, result.Users, 2)
	assert.Equal(t, user.ID("user2"), result.Users[0].ID)
	assert.Equal(t, user.ID("root"), result.Users[1].ID)
}

func TestListUsersAsRegular(t *testing.T) {
	unitOfWork, input := setup()
	service := New(logging.NewFakeLogger(), unitOfWork, access.NewGuard())
	input.Principal = access.Principal{SubjectID: "user1", Role: access.RoleRegular}

	result, err := service.Run(context.Background(), *input)

	assert.ErrorIs(t, err, access.ErrNotOwner)
	assert.Empty(t, result.Users)
	assert.Empty(t, unitOfWork.Users().ReadWith)
}
