package getreminder

import (
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/reminder"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/get_reminder"
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

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	reminderID := chi.URLParam(r, "reminderID")

	result, err := h.service.Run(r.Context(), service.Input{ReminderID: reminder.ID(reminderID)})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusOK)
}
