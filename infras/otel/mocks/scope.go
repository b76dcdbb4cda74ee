package mocks

import (
	"cafe/infras/otel"
	"sync"
)

// Scope records what code under test reports, so tests can assert on traced errors.
type Scope struct {
	mu sync.Mutex

	Name       string
	Ended      bool
	Errors     []error
	Events     []string
	Attributes map[string]any
}

func NewScope() otel.Scope {
	return newScope("")
}

func newScope(name string) *Scope {
	return &Scope{Name: name, Attributes: map[string]any{}}
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
