package pet

import (
	"context"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/user"
	"petminder/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxPetRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxPetRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) SetupTest() {
	db.CreateTestUser(suite.pool, "user-1")
	db.CreateTestUser(suite.pool, "user-2")
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxPetRepository(t *testing.T) {
	db.SkipWithoutDatabase(t)
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateWithHealthData() {
	health := pet.HealthData{
		WeightHistory:      []float64{3.5, 4.1},
		LastVetVisit:       c.NewOptional(NOW.Add(-48*time.Hour), true),
		Vaccinations:       []string{"rabies"},
		Allergies:          []string{},
		MedicalNotes:       c.NewOptional("Sensitive stomach", true),
		CurrentMedications: []string{"probiotic"},
	}

	created, err := s.repo.Create(context.Background(), pet.CreateInput{
		ID:          "pet-1",
		OwnerID:     "user-1",
		Name:        "Rex",
		Gender:      "male",
		Type:        "dog",
		DateOfBirth: NOW.AddDate(-2, 0, 0),
		Breed:       "beagle",
		Weight:      4.1,
		HealthData:  c.NewOptional(health, true),
		CreatedAt:   NOW,
	})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(user.ID("user-1"), created.OwnerID)
	assert.True(created.HealthData.IsPresent)
	assert.Equal(health.WeightHistory, created.HealthData.Value.WeightHistory)
	assert.True(health.LastVetVisit.Value.Equal(created.HealthData.Value.LastVetVisit.Value))
	assert.Equal(health.MedicalNotes, created.HealthData.Value.MedicalNotes)

	fetched, err := s.repo.GetByID(context.Background(), "pet-1")
	assert.Nil(err)
	assert.Equal(created, fetched)
}

func (s *testSuite) TestCreateErrors() {
	s.createPet("pet-1", "user-1")

	_, err := s.repo.Create(context.Background(), pet.CreateInput{ID: "pet-1", OwnerID: "user-1", Name: "Tom", CreatedAt: NOW})
	s.ErrorIs(err, pet.ErrPetAlreadyExists)

	_, err = s.repo.Create(context.Background(), pet.CreateInput{ID: "pet-2", OwnerID: "ghost", Name: "Tom", CreatedAt: NOW})
	s.ErrorIs(err, user.ErrOwnerDoesNotExist)
}

func (s *testSuite) TestReadByOwner() {
	s.createPet("pet-1", "user-1")
	s.createPet("pet-2", "user-2")
	s.createPet("pet-3", "user-1")

	pets, err := s.repo.Read(context.Background(), pet.ReadOptions{OwnerIDEquals: c.NewOptional(user.ID("user-1"), true)})
	s.Nil(err)
	s.Len(pets, 2)

	count, err := s.repo.Count(context.Background(), pet.ReadOptions{})
	s.Nil(err)
	s.Equal(uint(3), count)

	pets, err = s.repo.Read(context.Background(), pet.ReadOptions{Offset: 5})
	s.Nil(err)
	s.Empty(pets)
}

func (s *testSuite) TestUpdateAndDelete() {
	s.createPet("pet-1", "user-1")

	updated, err := s.repo.Update(context.Background(), pet.UpdateInput{
		ID:             "pet-1",
		DoNameUpdate:   true,
		Name:           "Max",
		DoWeightUpdate: true,
		Weight:         12.5,
	})
	s.Nil(err)
	s.Equal("Max", updated.Name)
	s.Equal(12.5, updated.Weight)
	s.False(updated.HealthData.IsPresent)

	s.Nil(s.repo.Delete(context.Background(), "pet-1"))
	s.ErrorIs(s.repo.Delete(context.Background(), "pet-1"), pet.ErrPetDoesNotExist)
	_, err = s.repo.Update(context.Background(), pet.UpdateInput{ID: "pet-1"})
	s.ErrorIs(err, pet.ErrPetDoesNotExist)
}

func (s *testSuite) createPet(id pet.ID, ownerID user.ID) {
	s.T().Helper()
	_, err := s.repo.Create(context.Background(), pet.CreateInput{
		ID:          id,
		OwnerID:     ownerID,
		Name:        "Rex",
		DateOfBirth: NOW.AddDate(-1, 0, 0),
		CreatedAt:   NOW,
	})
	if err != nil {
		s.FailNowf("could not create pet", "err: %v", err)
	}
}
