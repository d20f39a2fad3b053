package createpet

import (
	"encoding/json"
	"io"
	"net/http"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/create_pet"
	"petminder/internal/http/handlers/pets"
	"petminder/internal/http/handlers/response"
	"time"

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

type Input struct {
	ID          *string          `json:"id"`
	OwnerID     string           `json:"owner_id"`
	Name        string           `json:"name"`
	Gender      string           `json:"gender"`
	Type        string           `json:"type"`
	DateOfBirth time.Time        `json:"date_of_birth"`
	Breed       string           `json:"breed"`
	Weight      float64          `json:"weight"`
	HealthData  *pets.HealthData `json:"health_data"`
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
		validation.Field(&i.ID, validation.NilOrNotEmpty, validation.Length(0, 64)),
		validation.Field(&i.OwnerID, validation.Length(0, 64)),
		validation.Field(&i.Name, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Gender, validation.Length(0, 64)),
		validation.Field(&i.Type, validation.Length(0, 64)),
		validation.Field(&i.Breed, validation.Length(0, 256)),
		validation.Field(&i.Weight, validation.Min(0.0)),
		validation.Field(&i.HealthData),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	var id c.Optional[pet.ID]
	if input.ID != nil {
		id = c.NewOptional(pet.ID(*input.ID), true)
	}
	result, err := h.service.Run(
		r.Context(),
		service.Input{
			ID:          id,
			OwnerID:     user.ID(input.OwnerID),
			Name:        input.Name,
			Gender:      input.Gender,
			Type:        input.Type,
			DateOfBirth: input.DateOfBirth.UTC(),
			Breed:       input.Breed,
			Weight:      input.Weight,
			HealthData:  pets.OptionalHealthData(input.HealthData),
		},
	)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	p := response.Pet{}
	p.FromDomainType(result.Pet)
	response.Render(rw, Result{Pet: p}, http.StatusCreated)
}
