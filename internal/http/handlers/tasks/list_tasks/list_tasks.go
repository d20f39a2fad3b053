package listtasks

import (
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/list_tasks"
	"petminder/internal/http/handlers/pagination"
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

type Result struct {
	Tasks      []response.Task `json:"tasks"`
	TotalCount uint            `json:"total_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query, msg, ok := pagination.Parse(r)
	if !ok {
		response.RenderError(rw, msg, http.StatusBadRequest)
		return
	}
	isCompleted, err := pagination.ParseBool(r.URL.Query().Get("is_completed"))
	if err != nil {
		response.RenderError(rw, "invalid is_completed query parameter", http.StatusBadRequest)
		return
	}

	input := service.Input{
		OwnerID:     user.ID(query.OwnerID),
		IsCompleted: isCompleted,
		Limit:       query.Limit,
		Offset:      query.Offset,
	}
	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	tasks := make([]response.Task, 0, len(result.Tasks))
	for _, t := range result.Tasks {
		respTask := response.Task{}
		respTask.FromDomainType(t)
		tasks = append(tasks, respTask)
	}
	response.Render(rw, Result{Tasks: tasks, TotalCount: result.TotalCount}, http.StatusOK)
}
