package common

import (
	"fmt"
	"sync"
)

// FakeIdentityGenerator hands out "<prefix>-1", "<prefix>-2", ...
type FakeIdentityGenerator struct {
	Prefix string
	count  int
	lock   sync.Mutex
}

func NewFakeIdentityGenerator(prefix string) *FakeIdentityGenerator {
	return &FakeIdentityGenerator{Prefix: prefix}
}

func (g *FakeIdentityGenerator) GenerateID() string {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.count++
	return fmt.Sprintf("%s-%d", g.Prefix, g.count)
}

// Paginate applies offset/limit the way the storage layer does.
func Paginate[T any](items []T, offset uint, limit Optional[uint]) []T {
	if offset >= uint(len(items)) {
		return []T{}
	}
	end := uint(len(items))
	if limit.IsPresent && offset+limit.Value < end {
		end = offset + limit.Value
	}
	result := make([]T, end-offset)
	copy(result, items[offset:end])
	return result
}
