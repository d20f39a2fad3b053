package updatereminder

import (
	"encoding/json"
	"io"
	"net/http"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/reminder"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/update_reminder"
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

// Input updates only the fields that are present. Nullable fields are
// cleared with the matching do_*_update flag and a null value.
type Input struct {
	DoPetIDUpdate             bool       `json:"do_pet_id_update"`
	PetID                     *string    `json:"pet_id"`
	Title                     *string    `json:"title"`
	DoMessageUpdate           bool       `json:"do_message_update"`
	Message                   *string    `json:"message"`
	FireAt                    *time.Time `json:"fire_at"`
	IsRecurring               *bool      `json:"is_recurring"`
	DoRecurrencePatternUpdate bool       `json:"do_recurrence_pattern_update"`
	RecurrencePattern         *string    `json:"recurrence_pattern"`
	IsCompleted               *bool      `json:"is_completed"`
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
		validation.Field(&i.PetID, validation.NilOrNotEmpty, validation.Length(0, 64)),
		validation.Field(&i.Title, validation.Length(0, 512)),
		validation.Field(&i.Message, validation.Length(0, 4096)),
		validation.Field(&i.RecurrencePattern, validation.Length(0, 64)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	reminderID := chi.URLParam(r, "reminderID")

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{ReminderID: reminder.ID(reminderID)}
	if input.DoPetIDUpdate || input.PetID != nil {
		serviceInput.DoPetIDUpdate = true
		if input.PetID != nil {
			serviceInput.PetID = c.NewOptional(pet.ID(*input.PetID), true)
		}
	}
	if input.Title != nil {
		serviceInput.DoTitleUpdate = true
		serviceInput.Title = *input.Title
	}
	if input.DoMessageUpdate || input.Message != nil {
		serviceInput.DoMessageUpdate = true
		serviceInput.Message = c.OptionalFromPointer(input.Message)
	}
	if input.FireAt != nil {
		serviceInput.DoFireAtUpdate = true
		serviceInput.FireAt = input.FireAt.UTC()
	}
	if input.IsRecurring != nil {
		serviceInput.DoIsRecurringUpdate = true
		serviceInput.IsRecurring = *input.IsRecurring
	}
	if input.DoRecurrencePatternUpdate || input.RecurrencePattern != nil {
		serviceInput.DoRecurrencePatternUpdate = true
		serviceInput.RecurrencePattern = c.OptionalFromPointer(input.RecurrencePattern)
	}
	if input.IsCompleted != nil {
		serviceInput.DoIsCompletedUpdate = true
		serviceInput.IsCompleted = *input.IsCompleted
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusOK)
}
