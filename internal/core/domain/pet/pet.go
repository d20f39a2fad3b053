package pet

import (
	"time"

	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/user"
)

type ID string

type HealthData struct {
	WeightHistory      []float64
	LastVetVisit       c.Optional[time.Time]
	Vaccinations       []string
	Allergies          []string
	MedicalNotes       c.Optional[string]
	CurrentMedications []string
}

// CurrentWeight is the latest recorded weight, 0 when nothing was recorded.
func (h HealthData) CurrentWeight() float64 {
	if len(h.WeightHistory) == 0 {
		return 0
	}
	return h.WeightHistory[len(h.WeightHistory)-1]
}

type Pet struct {
	ID          ID
	OwnerID     user.ID
	Name        string
	Gender      string
	Type        string
	DateOfBirth time.Time
	Breed       string
	Weight      float64
	HealthData  c.Optional[HealthData]
	CreatedAt   time.Time
}

func (p Pet) Owner() string {
	return string(p.OwnerID)
}
