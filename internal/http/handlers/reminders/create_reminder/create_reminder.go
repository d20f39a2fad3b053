package createreminder

import (
	"encoding/json"
	"io"
	"net/http"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/reminder"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/create_reminder"
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

// Input leaves schedule checks (fire_at, recurrence_pattern) to the service
// so that they are reported as schedule errors.
type Input struct {
	ID                *string   `json:"id"`
	OwnerID           string    `json:"owner_id"`
	PetID             *string   `json:"pet_id"`
	Title             string    `json:"title"`
	Message           *string   `json:"message"`
	FireAt            time.Time `json:"fire_at"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern *string   `json:"recurrence_pattern"`
	IsCompleted       bool      `json:"is_completed"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, validation.NilOrNotEmpty, validation.Length(0, 64)),
		validation.Field(&i.OwnerID, validation.Length(0, 64)),
		validation.Field(&i.PetID, validation.NilOrNotEmpty, validation.Length(0, 64)),
		validation.Field(&i.Title, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Message, validation.Length(0, 4096)),
		validation.Field(&i.RecurrencePattern, validation.Length(0, 64)),
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

	serviceInput := service.Input{
		OwnerID:           user.ID(input.OwnerID),
		Title:             input.Title,
		Message:           c.OptionalFromPointer(input.Message),
		FireAt:            input.FireAt.UTC(),
		IsRecurring:       input.IsRecurring,
		RecurrencePattern: c.OptionalFromPointer(input.RecurrencePattern),
		IsCompleted:       input.IsCompleted,
	}
	if input.ID != nil {
		serviceInput.ID = c.NewOptional(reminder.ID(*input.ID), true)
	}
	if input.PetID != nil {
		serviceInput.PetID = c.NewOptional(pet.ID(*input.PetID), true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}
