package mocks

import (
	"sync"

	"linka/infras/otel"
)

// Scope is a no-op otel.Scope that remembers what it was told, for tests
// that assert on traced errors or events.
type Scope struct {
	mu     sync.Mutex
	Errors []error
	Events []string
}

func NewScope() *Scope {
	return &Scope{}
}

func (s *Scope) End() {}

func (s *Scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err *error) {
	if err != nil {
		s.TraceError(*err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(_ string, _ any) {}

func (s *Scope) SetAttributes(_ map[string]any) {}

var _ otel.Scope = (*Scope)(nil)
