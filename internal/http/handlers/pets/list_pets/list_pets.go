package listpets

import (
	"net/http"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"petminder/internal/core/services"
	service "petminder/internal/core/services/list_pets"
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
	Pets       []response.Pet `json:"pets"`
	TotalCount uint           `json:"total_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query, msg, ok := pagination.Parse(r)
	if !ok {
		response.RenderError(rw, msg, http.StatusBadRequest)
		return
	}

	input := service.Input{
		OwnerID: user.ID(query.OwnerID),
		Limit:   query.Limit,
		Offset:  query.Offset,
	}
	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	pets := make([]response.Pet, 0, len(result.Pets))
	for _, p := range result.Pets {
		respPet := response.Pet{}
		respPet.FromDomainType(p)
		pets = append(pets, respPet)
	}
	response.Render(rw, Result{Pets: pets, TotalCount: result.TotalCount}, http.StatusOK)
}
