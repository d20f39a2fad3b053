package createpet

import (
	"context"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/pet"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var (
	Now         = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	DateOfBirth = time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC)
	Regular     = access.Principal{SubjectID: "user1", Role: access.RoleRegular}
	Admin       = access.Principal{SubjectID: "root", Role: access.RoleAdmin}
)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	unitOfWork *uow.FakeUnitOfWork
	guard      *access.FakeGuard
	service    services.Service[Input, Result]
	input      Input
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.unitOfWork = uow.NewFakeUnitOfWork()
	suite.unitOfWork.Users().Users = []user.User{{ID: "user1"}, {ID: "user2"}, {ID: "root"}}
	suite.guard = access.NewFakeGuard()
	suite.service = New(
		suite.logger,
		suite.unitOfWork,
		suite.guard,
		c.NewFakeIdentityGenerator("pet"),
		func() time.Time { return Now },
	)
	suite.input = Input{
		Name:        "Rex",
		Gender:      "male",
		Type:        "dog",
		DateOfBirth: DateOfBirth,
		Breed:       "Beagle",
		Weight:      12.5,
		HealthData: c.NewOptional(pet.HealthData{
			WeightHistory: []float64{11.0, 12.5},
			Vaccinations:  []string{"rabies"},
		}, true),
	}
}

func TestCreatePetService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestRegularOwnsWhatItCreates() {
	s.input.Principal = Regular
	s.input.OwnerID = "user2"

	result, err := s.service.Run(context.Background(), s.input)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(pet.ID("pet-1"), result.Pet.ID)
	assert.Equal(user.ID("user1"), result.Pet.OwnerID)
	assert.Equal("Rex", result.Pet.Name)
	assert.Equal(12.5, result.Pet.HealthData.Value.CurrentWeight())
	assert.Equal(Now, result.Pet.CreatedAt)
	assert.True(s.unitOfWork.Context.WasCommitCalled)
	assert.Equal(access.OperationCreate, s.guard.Calls[0].Operation)
}

func (s *testSuite) TestAdminCreatesForTargetOwner() {
	s.input.Principal = Admin
	s.input.OwnerID = "user2"
	s.input.ID = c.NewOptional(pet.ID("rex"), true)

	result, err := s.service.Run(context.Background(), s.input)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(pet.ID("rex"), result.Pet.ID)
	assert.Equal(user.ID("user2"), result.Pet.OwnerID)
}

func (s *testSuite) TestAdminWithoutTargetOwner() {
	s.input.Principal = Admin

	_, err := s.service.Run(context.Background(), s.input)

	assert := s.Require()
	assert.ErrorIs(err, access.ErrTargetOwnerRequired)
	assert.ErrorIs(err, e.ErrInvalidRequest)
	assert.Empty(s.unitOfWork.Pets().Pets)
}

func (s *testSuite) TestAdminWithUnknownOwner() {
	s.input.Principal = Admin
	s.input.OwnerID = "ghost"

	_, err := s.service.Run(context.Background(), s.input)

	s.ErrorIs(err, user.ErrOwnerDoesNotExist)
	s.Empty(s.unitOfWork.Pets().Pets)
}

func (s *testSuite) TestDuplicateID() {
	s.input.Principal = Regular
	s.input.ID = c.NewOptional(pet.ID("rex"), true)
	_, err := s.service.Run(context.Background(), s.input)
	s.Require().Nil(err)

	_, err = s.service.Run(context.Background(), s.input)

	s.ErrorIs(err, pet.ErrPetAlreadyExists)
	s.Len(s.unitOfWork.Pets().Pets, 1)
}

func (s *testSuite) TestUnknownRole() {
	s.input.Principal = access.Principal{SubjectID: "user1"}

	_, err := s.service.Run(context.Background(), s.input)

	s.ErrorIs(err, e.ErrForbidden)
}
