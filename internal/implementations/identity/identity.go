package identity

import (
	"github.com/google/uuid"
)

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateID() string {
	return uuid.New().String()
}
