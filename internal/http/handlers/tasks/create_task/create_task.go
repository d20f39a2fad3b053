package createtask

import (
	"encoding/json"
	"io"
	"net/http"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/task"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/create_task"
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
	ID          *string    `json:"id"`
	OwnerID     string     `json:"owner_id"`
	PetID       *string    `json:"pet_id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
}

type Result struct {
	Task response.Task `json:"task"`
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
		validation.Field(&i.Type, validation.Length(0, 64)),
		validation.Field(&i.Title, validation.Required, validation.Length(0, 512)),
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
		OwnerID:     user.ID(input.OwnerID),
		Type:        input.Type,
		Title:       input.Title,
		IsCompleted: input.IsCompleted,
	}
	if input.ID != nil {
		serviceInput.ID = c.NewOptional(task.ID(*input.ID), true)
	}
	if input.PetID != nil {
		serviceInput.PetID = c.NewOptional(pet.ID(*input.PetID), true)
	}
	if input.DueDate != nil {
		serviceInput.DueDate = c.NewOptional(input.DueDate.UTC(), true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	t := response.Task{}
	t.FromDomainType(result.Task)
	response.Render(rw, Result{Task: t}, http.StatusCreated)
}
