package gettask

import (
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/task"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/get_task"
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
	Task response.Task `json:"task"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	result, err := h.service.Run(r.Context(), service.Input{TaskID: task.ID(taskID)})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	t := response.Task{}
	t.FromDomainType(result.Task)
	response.Render(rw, Result{Task: t}, http.StatusOK)
}
