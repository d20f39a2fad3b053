package pets

import (
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/pet"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthDataValidate(t *testing.T) {
	assert.Nil(t, HealthData{WeightHistory: []float64{1.5, 2}, Allergies: []string{"pollen"}}.Validate())
	assert.NotNil(t, HealthData{WeightHistory: []float64{-1}}.Validate())
	assert.NotNil(t, HealthData{Vaccinations: []string{""}}.Validate())
}

func TestOptionalHealthData(t *testing.T) {
	assert.False(t, OptionalHealthData(nil).IsPresent)

	notes := "calm"
	visit := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	actual := OptionalHealthData(&HealthData{LastVetVisit: &visit, MedicalNotes: &notes})

	assert.Equal(t, c.NewOptional(pet.HealthData{
		LastVetVisit: c.NewOptional(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), true),
		MedicalNotes: c.NewOptional("calm", true),
	}, true), actual)
}
