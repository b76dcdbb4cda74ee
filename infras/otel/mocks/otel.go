package mocks

import (
	"cafe/infras/otel"
	"context"
	"sync"
)

// Otel hands out recording scopes and keeps them by span name.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := newScope(name)
	o.scopes = append(o.scopes, scope)

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the last scope opened under name, or nil.
func (o *Otel) Scope(name string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := len(o.scopes) - 1; i >= 0; i-- {
		if o.scopes[i].Name == name {
			return o.scopes[i]
		}
	}

	return nil
}
