package createreminder

import (
	"context"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/logging"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/reminder"
	uow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const HORIZON_COUNT = 3

var (
	Now     = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	Regular = access.Principal{SubjectID: "user1", Role: access.RoleRegular}
	Admin   = access.Principal{SubjectID: "root", Role: access.RoleAdmin}
)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	unitOfWork *uow.FakeUnitOfWork
	service    services.Service[Input, Result]
	input      Input
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.unitOfWork = uow.NewFakeUnitOfWork()
	suite.unitOfWork.Users().Users = []user.User{{ID: "user1"}, {ID: "user2"}}
	suite.unitOfWork.Pets().Pets = []pet.Pet{{ID: "rex", OwnerID: "user1"}, {ID: "tom", OwnerID: "user2"}}
	suite.service = New(
		suite.logger,
		suite.unitOfWork,
		access.NewGuard(),
		c.NewFakeIdentityGenerator("reminder"),
		HORIZON_COUNT,
		func() time.Time { return Now },
	)
	suite.input = Input{
		Principal: Regular,
		Title:     "Deworming",
		FireAt:    Now.Add(time.Hour),
	}
}

func TestCreateReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestOneOff() {
	result, err := s.service.Run(context.Background(), s.input)

	assert := s.Require()
	assert.Nil(err)
	view := result.Reminder
	assert.Equal(reminder.ID("reminder-1"), view.Reminder.ID)
	assert.Equal(user.ID("user1"), view.Reminder.OwnerID)
	assert.Equal(Now, view.Reminder.CreatedAt)
	assert.False(view.IsDue)
	assert.Empty(view.NextOccurrences)
	assert.True(s.unitOfWork.Context.WasCommitCalled)
}

func (s *testSuite) TestRecurringWeekly() {
	s.input.FireAt = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	s.input.IsRecurring = true
	s.input.RecurrencePattern = c.NewOptional("Weekly", true)

	result, err := s.service.Run(context.Background(), s.input)

	assert := s.Require()
	assert.Nil(err)
	view := result.Reminder
	assert.True(view.IsDue)
	assert.Len(view.NextOccurrences, HORIZON_COUNT)
	for ix, day := range []int{8, 15, 22} {
		assert.True(view.NextOccurrences[ix].Equal(time.Date(2024, 6, day, 8, 0, 0, 0, time.UTC)))
	}
}

func (s *testSuite) TestPatternIgnoredWhenNotRecurring() {
	s.input.RecurrencePattern = c.NewOptional("fortnightly", true)

	result, err := s.service.Run(context.Background(), s.input)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(c.NewOptional("fortnightly", true), result.Reminder.Reminder.RecurrencePattern)
	assert.Empty(result.Reminder.NextOccurrences)
}

func (s *testSuite) TestInvalidSchedule() {
	cases := []struct {
		id      string
		fireAt  time.Time
		pattern c.Optional[string]
	}{
		{id: "no pattern", fireAt: Now.Add(time.Hour)},
		{id: "unknown pattern", fireAt: Now.Add(time.Hour), pattern: c.NewOptional("hourly", true)},
		{id: "no fire time", pattern: c.NewOptional("daily", true)},
	}
	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			input := s.input
			input.FireAt = testcase.fireAt
			input.IsRecurring = true
			input.RecurrencePattern = testcase.pattern

			_, err := s.service.Run(context.Background(), input)

			s.ErrorIs(err, e.ErrInvalidSchedule)
		})
	}
	s.Empty(s.unitOfWork.Reminders().Reminders)
}

func (s *testSuite) TestEmptyTitle() {
	s.input.Title = ""

	_, err := s.service.Run(context.Background(), s.input)

	s.ErrorIs(err, reminder.ErrTitleRequired)
}

func (s *testSuite) TestForbiddenBeforeValidation() {
	s.input.Principal = access.Principal{SubjectID: "user1"}
	s.input.IsRecurring = true

	_, err := s.service.Run(context.Background(), s.input)

	s.ErrorIs(err, e.ErrForbidden)
}

func (s *testSuite) TestAdminOnBehalfOfOwner() {
	s.input.Principal = Admin
	s.input.OwnerID = "user2"
	s.input.PetID = c.NewOptional(pet.ID("tom"), true)

	result, err := s.service.Run(context.Background(), s.input)

	s.Nil(err)
	s.Equal(user.ID("user2"), result.Reminder.Reminder.OwnerID)
}

func (s *testSuite) TestForeignPet() {
	s.input.PetID = c.NewOptional(pet.ID("tom"), true)

	_, err := s.service.Run(context.Background(), s.input)

	s.ErrorIs(err, pet.ErrInvalidReference)
	s.Empty(s.unitOfWork.Reminders().Reminders)
}
