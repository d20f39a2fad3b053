package listreminders

import (
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/list_reminders"
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
	Reminders  []response.Reminder `json:"reminders"`
	TotalCount uint                `json:"total_count"`
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

	reminders := make([]response.Reminder, 0, len(result.Reminders))
	for _, view := range result.Reminders {
		respReminder := response.Reminder{}
		respReminder.FromDomainType(view)
		reminders = append(reminders, respReminder)
	}
	response.Render(rw, Result{Reminders: reminders, TotalCount: result.TotalCount}, http.StatusOK)
}
