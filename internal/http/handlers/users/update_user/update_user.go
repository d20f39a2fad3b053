package updateuser

import (
	"encoding/json"
	"io"
	"net/http"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/update_user"
	"petminder/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
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
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
}

type Result struct {
	User response.User `json:"user"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.NilOrNotEmpty, is.Email, validation.Length(0, 512)),
		validation.Field(&i.FirstName, validation.Length(0, 256)),
		validation.Field(&i.LastName, validation.Length(0, 256)),
		validation.Field(&i.Password, validation.NilOrNotEmpty, validation.Length(8, 256)),
		validation.Field(&i.Role, validation.NilOrNotEmpty),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{UserID: user.ID(userID)}
	if input.Email != nil {
		serviceInput.DoEmailUpdate = true
		serviceInput.Email = c.NewEmail(*input.Email)
	}
	if input.FirstName != nil {
		serviceInput.DoFirstNameUpdate = true
		serviceInput.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		serviceInput.DoLastNameUpdate = true
		serviceInput.LastName = *input.LastName
	}
	if input.Password != nil {
		serviceInput.DoPasswordUpdate = true
		serviceInput.Password = user.RawPassword(*input.Password)
	}
	if input.Role != nil {
		role, err := access.ParseRole(*input.Role)
		if err != nil {
			response.RenderError(rw, "invalid role", http.StatusBadRequest)
			return
		}
		serviceInput.DoRoleUpdate = true
		serviceInput.Role = role
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	u := response.User{}
	u.FromDomainType(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}
