package access

import (
	"errors"
	"strings"
)

var ErrParseRole = errors.New("invalid role")

type Role struct {
	v string
}

func (r Role) String() string {
	return r.v
}

var (
	RoleUnknown = Role{}
	RoleRegular = Role{v: "regular"}
	RoleAdmin   = Role{v: "admin"}
)

// ParseRole maps a role claim onto the closed set of roles. Claims are matched
// case-insensitively; anything else is rejected rather than downgraded.
func ParseRole(value string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "regular":
		return RoleRegular, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, ErrParseRole
	}
}
