// Package pagination parses the query parameters shared by list endpoints.
package pagination

import (
	"fmt"
	"net/http"
	c "petminder/internal/core/domain/common"
	"strconv"
)

const MAX_LIMIT = 100

type Query struct {
	OwnerID string
	Limit   c.Optional[uint]
	Offset  uint
}

// Parse reads owner_id, limit and offset. The returned message is safe to
// show to the client.
func Parse(r *http.Request) (q Query, msg string, ok bool) {
	values := r.URL.Query()
	q.OwnerID = values.Get("owner_id")

	limit, err := parseLimit(values.Get("limit"))
	if err != nil {
		return q, "invalid limit query parameter", false
	}
	q.Limit = limit

	offset, err := parseOffset(values.Get("offset"))
	if err != nil {
		return q, "invalid offset query parameter", false
	}
	q.Offset = offset
	return q, "", true
}

func ParseBool(raw string) (value c.Optional[bool], err error) {
	if raw == "" {
		return value, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return value, err
	}
	return c.NewOptional(b, true), nil
}

func parseLimit(raw string) (limit c.Optional[uint], err error) {
	if raw == "" {
		return limit, nil
	}
	l, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return limit, err
	}
	if l > MAX_LIMIT {
		return limit, fmt.Errorf("limit must be less than or equal to %v", MAX_LIMIT)
	}
	return c.NewOptional(uint(l), true), nil
}

func parseOffset(raw string) (offset uint, err error) {
	if raw == "" {
		return offset, nil
	}
	o, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return offset, err
	}
	return uint(o), nil
}
