package deleteuser

import (
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/delete_user"
	"petminder/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	_, err := h.service.Run(r.Context(), service.Input{UserID: user.ID(userID)})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}
	rw.WriteHeader(http.StatusNoContent)
}
