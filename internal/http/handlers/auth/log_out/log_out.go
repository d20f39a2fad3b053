package logout

import (
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/log_out"
	"petminder/internal/http/handlers/response"
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
	_, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}
	rw.WriteHeader(http.StatusNoContent)
}
