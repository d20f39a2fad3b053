package access

import "sync"

type FakeGuardCall struct {
	Principal Principal
	Resource  Resource
	Operation Operation
	Decision  Decision
}

// FakeGuard applies the real rule and records every call.
type FakeGuard struct {
	Calls []FakeGuardCall
	lock  sync.Mutex
}

func NewFakeGuard() *FakeGuard {
	return &FakeGuard{}
}

func (g *FakeGuard) Authorize(principal Principal, resource Resource, operation Operation) Decision {
	decision := Authorize(principal, resource, operation)
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Calls = append(g.Calls, FakeGuardCall{
		Principal: principal,
		Resource:  resource,
		Operation: operation,
		Decision:  decision,
	})
	return decision
}

func (g *FakeGuard) CallCount() int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return len(g.Calls)
}
