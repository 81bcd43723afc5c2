package mocks

import (
	"context"
	"sync"

	"linka/infras/otel"
)

// Otel hands out recording scopes keyed by span name.
type Otel struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

func NewOtel() *Otel {
	return &Otel{scopes: map[string]*Scope{}}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope, ok := o.scopes[spanName]
	if !ok {
		scope = NewScope()
		o.scopes[spanName] = scope
	}

	return ctx, scope
}

// Scope returns the scope opened under spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.scopes[spanName]
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

var _ otel.Otel = (*Otel)(nil)
