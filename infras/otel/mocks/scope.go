package mocks

import "rantoo/infras/otel"

type noopScope struct{}

// AddEvent implements otel.Scope.
func (s *noopScope) AddEvent(_ string) {}

// End implements otel.Scope.
func (s *noopScope) End() {}

// SetAttribute implements otel.Scope.
func (s *noopScope) SetAttribute(_ string, _ any) {}

// SetAttributes implements otel.Scope.
func (s *noopScope) SetAttributes(_ map[string]any) {}

// TraceError implements otel.Scope.
func (s *noopScope) TraceError(_ error) {}

// TraceIfError implements otel.Scope.
func (s *noopScope) TraceIfError(_ error) {}

func NewScope() otel.Scope {
	return &noopScope{}
}
