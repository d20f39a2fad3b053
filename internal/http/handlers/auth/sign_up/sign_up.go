package signup

import (
	"encoding/json"
	"io"
	"net/http"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/sign_up"
	"petminder/internal/http/handlers/response"

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
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
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
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.FirstName, validation.Length(0, 256)),
		validation.Field(&i.LastName, validation.Length(0, 256)),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 256)),
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

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Email:     c.NewEmail(input.Email),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Password:  user.RawPassword(input.Password),
		},
	)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	u := response.User{}
	u.FromDomainType(result.User)
	response.Render(rw, Result{User: u}, http.StatusCreated)
}
