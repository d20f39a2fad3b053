package listusers

import (
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/list_users"
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
	Users      []response.User `json:"users"`
	TotalCount uint            `json:"total_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query, msg, ok := pagination.Parse(r)
	if !ok {
		response.RenderError(rw, msg, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Limit: query.Limit, Offset: query.Offset})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	users := make([]response.User, 0, len(result.Users))
	for _, u := range result.Users {
		respUser := response.User{}
		respUser.FromDomainType(u)
		users = append(users, respUser)
	}
	response.Render(rw, Result{Users: users, TotalCount: result.TotalCount}, http.StatusOK)
}
