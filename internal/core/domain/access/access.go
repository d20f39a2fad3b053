// Package access decides who may read and write owned records.
//
// Every resource kind (pets, tasks, reminders, users) is authorized with the
// same rule: administrators may do anything, regular users may only touch
// records they own. Authorize never performs I/O; callers load the record and
// report a missing one as "not found" before asking for a decision.
package access

import (
	"fmt"

	e "petminder/internal/core/domain/errors"
)

var (
	ErrNotOwner            = fmt.Errorf("%w: resource belongs to another user", e.ErrForbidden)
	ErrTargetOwnerRequired = fmt.Errorf("%w: owner must be set explicitly", e.ErrInvalidRequest)
)

type Operation struct {
	v string
}

func (o Operation) String() string {
	return o.v
}

var (
	OperationRead   = Operation{v: "read"}
	OperationCreate = Operation{v: "create"}
	OperationUpdate = Operation{v: "update"}
	OperationDelete = Operation{v: "delete"}
)

type Principal struct {
	SubjectID string
	Role      Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Resource is anything with an owning principal.
type Resource interface {
	Owner() string
}

type ownerScope string

func (s ownerScope) Owner() string {
	return string(s)
}

// OwnerScope represents "all records of ownerID", used to authorize listings.
// An empty ownerID stands for records of every owner.
func OwnerScope(ownerID string) Resource {
	return ownerScope(ownerID)
}

type Outcome struct {
	v string
}

func (o Outcome) String() string {
	return o.v
}

var (
	OutcomeAllow   = Outcome{v: "allow"}
	OutcomeDeny    = Outcome{v: "deny"}
	OutcomeInvalid = Outcome{v: "invalid"}
)

type Reason struct {
	v string
}

func (r Reason) String() string {
	return r.v
}

var (
	ReasonNone                = Reason{}
	ReasonNotOwner            = Reason{v: "not_owner"}
	ReasonTargetOwnerRequired = Reason{v: "target_owner_required"}
)

type Decision struct {
	Outcome Outcome
	Reason  Reason
}

func Allow() Decision {
	return Decision{Outcome: OutcomeAllow}
}

func Deny(reason Reason) Decision {
	return Decision{Outcome: OutcomeDeny, Reason: reason}
}

func Invalid(reason Reason) Decision {
	return Decision{Outcome: OutcomeInvalid, Reason: reason}
}

func (d Decision) IsAllowed() bool {
	return d.Outcome == OutcomeAllow
}

// Err translates the decision into the request error taxonomy.
func (d Decision) Err() error {
	switch d.Outcome {
	case OutcomeAllow:
		return nil
	case OutcomeInvalid:
		return ErrTargetOwnerRequired
	default:
		return ErrNotOwner
	}
}

// Authorize is total over its inputs; a nil resource is only meaningful for
// OperationCreate.
func Authorize(principal Principal, resource Resource, operation Operation) Decision {
	if principal.IsAdmin() {
		if operation == OperationCreate && (resource == nil || resource.Owner() == "") {
			return Invalid(ReasonTargetOwnerRequired)
		}
		return Allow()
	}
	if principal.Role == RoleRegular && isOwnedBy(resource, principal.SubjectID) {
		return Allow()
	}
	return Deny(ReasonNotOwner)
}

func isOwnedBy(resource Resource, subjectID string) bool {
	if resource == nil || subjectID == "" {
		return false
	}
	return resource.Owner() == subjectID
}

// AssignOwner returns the owner a new record must get. Administrators act on
// behalf of the requested owner; everyone else always owns what they create.
func AssignOwner(principal Principal, requestedOwnerID string) string {
	if principal.IsAdmin() {
		return requestedOwnerID
	}
	return principal.SubjectID
}

// ScopeFor returns the owner scope a listing must be authorized against.
func ScopeFor(principal Principal, requestedOwnerID string) string {
	if requestedOwnerID == "" && !principal.IsAdmin() {
		return principal.SubjectID
	}
	return requestedOwnerID
}

type Guard interface {
	Authorize(principal Principal, resource Resource, operation Operation) Decision
}

type guard struct{}

func NewGuard() Guard {
	return guard{}
}

func (guard) Authorize(principal Principal, resource Resource, operation Operation) Decision {
	return Authorize(principal, resource, operation)
}
