package pets

import (
	"errors"
	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/pet"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const MAX_LIST_LEN = 256

type HealthData struct {
	WeightHistory      []float64  `json:"weight_history"`
	LastVetVisit       *time.Time `json:"last_vet_visit"`
	Vaccinations       []string   `json:"vaccinations"`
	Allergies          []string   `json:"allergies"`
	MedicalNotes       *string    `json:"medical_notes"`
	CurrentMedications []string   `json:"current_medications"`
}

func (h HealthData) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.WeightHistory, validation.Length(0, MAX_LIST_LEN), validation.By(nonNegative)),
		validation.Field(&h.Vaccinations, validation.Length(0, MAX_LIST_LEN), validation.By(nonEmptyItems)),
		validation.Field(&h.Allergies, validation.Length(0, MAX_LIST_LEN), validation.By(nonEmptyItems)),
		validation.Field(&h.MedicalNotes, validation.Length(0, 4096)),
		validation.Field(&h.CurrentMedications, validation.Length(0, MAX_LIST_LEN), validation.By(nonEmptyItems)),
	)
}

func (h HealthData) ToDomainType() pet.HealthData {
	var lastVetVisit c.Optional[time.Time]
	if h.LastVetVisit != nil {
		lastVetVisit = c.NewOptional(h.LastVetVisit.UTC(), true)
	}
	return pet.HealthData{
		WeightHistory:      h.WeightHistory,
		LastVetVisit:       lastVetVisit,
		Vaccinations:       h.Vaccinations,
		Allergies:          h.Allergies,
		MedicalNotes:       c.OptionalFromPointer(h.MedicalNotes),
		CurrentMedications: h.CurrentMedications,
	}
}

// OptionalHealthData converts a possibly absent request value.
func OptionalHealthData(h *HealthData) c.Optional[pet.HealthData] {
	if h == nil {
		return c.Optional[pet.HealthData]{}
	}
	return c.NewOptional(h.ToDomainType(), true)
}

func nonNegative(value interface{}) error {
	weights, _ := value.([]float64)
	for _, w := range weights {
		if w < 0 {
			return errors.New("must not contain negative values")
		}
	}
	return nil
}

func nonEmptyItems(value interface{}) error {
	items, _ := value.([]string)
	for _, item := range items {
		if item == "" || len(item) > 256 {
			return errors.New("items must be between 1 and 256 characters")
		}
	}
	return nil
}
