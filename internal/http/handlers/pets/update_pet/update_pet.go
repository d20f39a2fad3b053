package updatepet

import (
	"encoding/json"
	"io"
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/update_pet"
	"petminder/internal/http/handlers/pets"
	"petminder/internal/http/handlers/response"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// Input updates only the fields that are present. Health data is cleared
// with do_health_data_update=true and a null health_data.
type Input struct {
	Name               *string          `json:"name"`
	Gender             *string          `json:"gender"`
	Type               *string          `json:"type"`
	DateOfBirth        *time.Time       `json:"date_of_birth"`
	Breed              *string          `json:"breed"`
	Weight             *float64         `json:"weight"`
	DoHealthDataUpdate bool             `json:"do_health_data_update"`
	HealthData         *pets.HealthData `json:"health_data"`
}

type Result struct {
	Pet response.Pet `json:"pet"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.NilOrNotEmpty, validation.Length(0, 256)),
		validation.Field(&i.Gender, validation.Length(0, 64)),
		validation.Field(&i.Type, validation.Length(0, 64)),
		validation.Field(&i.Breed, validation.Length(0, 256)),
		validation.Field(&i.Weight, validation.Min(0.0)),
		validation.Field(&i.HealthData),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petID")

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{PetID: pet.ID(petID)}
	if input.Name != nil {
		serviceInput.DoNameUpdate = true
		serviceInput.Name = *input.Name
	}
	if input.Gender != nil {
		serviceInput.DoGenderUpdate = true
		serviceInput.Gender = *input.Gender
	}
	if input.Type != nil {
		serviceInput.DoTypeUpdate = true
		serviceInput.Type = *input.Type
	}
	if input.DateOfBirth != nil {
		serviceInput.DoDateOfBirthUpdate = true
		serviceInput.DateOfBirth = input.DateOfBirth.UTC()
	}
	if input.Breed != nil {
		serviceInput.DoBreedUpdate = true
		serviceInput.Breed = *input.Breed
	}
	if input.Weight != nil {
		serviceInput.DoWeightUpdate = true
		serviceInput.Weight = *input.Weight
	}
	if input.DoHealthDataUpdate || input.HealthData != nil {
		serviceInput.DoHealthDataUpdate = true
		serviceInput.HealthData = pets.OptionalHealthData(input.HealthData)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	p := response.Pet{}
	p.FromDomainType(result.Pet)
	response.Render(rw, Result{Pet: p}, http.StatusOK)
}
