package response

import (
	"encoding/json"
	"errors"
	"net/http"
	e "petminder/internal/core/domain/errors"
	ratelimiter "petminder/internal/core/domain/rate_limiter"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderError(rw, "invalid authentication token", http.StatusUnauthorized)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

// RenderServiceError translates an error returned by a service into a
// status code. Errors outside the domain taxonomy are not exposed.
func RenderServiceError(rw http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		RenderRateLimitExceeded(rw)
	case errors.Is(err, e.ErrUnauthenticated):
		RenderError(rw, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, e.ErrNotFound):
		RenderError(rw, err.Error(), http.StatusNotFound)
	case errors.Is(err, e.ErrForbidden):
		RenderError(rw, err.Error(), http.StatusForbidden)
	case errors.Is(err, e.ErrInvalidSchedule):
		RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, e.ErrInvalidRequest):
		RenderError(rw, err.Error(), http.StatusBadRequest)
	default:
		RenderInternalError(rw)
	}
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
