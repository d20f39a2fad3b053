package getuser

import (
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/get_user"
	"petminder/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

// Handler serves both /users/{userID} and /users/me; the latter has no
// userID parameter and resolves to the caller.
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

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	result, err := h.service.Run(r.Context(), service.Input{UserID: user.ID(userID)})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	u := response.User{}
	u.FromDomainType(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}
