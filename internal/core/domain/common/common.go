package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// OptionalFromPointer converts a nullable wire value into an Optional.
func OptionalFromPointer[T any](value *T) Optional[T] {
	if value == nil {
		return Optional[T]{}
	}
	return Optional[T]{Value: *value, IsPresent: true}
}

// Pointer is the inverse of OptionalFromPointer.
func (p Optional[T]) Pointer() *T {
	if !p.IsPresent {
		return nil
	}
	v := p.Value
	return &v
}

type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}

type IdentityGenerator interface {
	GenerateID() string
}
