package response

import (
	"petminder/internal/core/domain/pet"
	"time"
)

type HealthData struct {
	WeightHistory      []float64  `json:"weight_history"`
	CurrentWeight      float64    `json:"current_weight"`
	LastVetVisit       *time.Time `json:"last_vet_visit"`
	Vaccinations       []string   `json:"vaccinations"`
	Allergies          []string   `json:"allergies"`
	MedicalNotes       *string    `json:"medical_notes"`
	CurrentMedications []string   `json:"current_medications"`
}

type Pet struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Name        string      `json:"name"`
	Gender      string      `json:"gender"`
	Type        string      `json:"type"`
	DateOfBirth time.Time   `json:"date_of_birth"`
	Breed       string      `json:"breed"`
	Weight      float64     `json:"weight"`
	HealthData  *HealthData `json:"health_data"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (p *Pet) FromDomainType(dp pet.Pet) {
	p.ID = string(dp.ID)
	p.OwnerID = string(dp.OwnerID)
	p.Name = dp.Name
	p.Gender = dp.Gender
	p.Type = dp.Type
	p.DateOfBirth = dp.DateOfBirth
	p.Breed = dp.Breed
	p.Weight = dp.Weight
	p.CreatedAt = dp.CreatedAt
	if dp.HealthData.IsPresent {
		h := dp.HealthData.Value
		p.HealthData = &HealthData{
			WeightHistory:      nonNil(h.WeightHistory),
			CurrentWeight:      h.CurrentWeight(),
			LastVetVisit:       h.LastVetVisit.Pointer(),
			Vaccinations:       nonNil(h.Vaccinations),
			Allergies:          nonNil(h.Allergies),
			MedicalNotes:       h.MedicalNotes.Pointer(),
			CurrentMedications: nonNil(h.CurrentMedications),
		}
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
